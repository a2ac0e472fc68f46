package domain

import "time"

// CommentType classifies a post comment.
type CommentType string

const (
	CommentTypeInitial CommentType = "INITIAL_COMMENT"
	CommentTypeReply   CommentType = "REPLY"
)

// Post is an editorial entry published from a center by an employee.
// Publish defaults to false for new instances rather than being tri-state.
type Post struct {
	BaseModel
	PostDate    *LocalDate `json:"postDate,omitempty"`
	Title       string     `gorm:"size:255" json:"title,omitempty"`
	Body        string     `gorm:"size:10000" json:"body,omitempty"`
	Publish     bool       `json:"publish"`
	PublishedOn *time.Time `json:"publishedOn,omitempty"`
	CenterID    *string    `gorm:"size:36" json:"-"`
	Center      *Center    `gorm:"foreignKey:CenterID" json:"center,omitempty"`
	EmployeeID  *string    `gorm:"size:36" json:"-"`
	Employee    *Employee  `gorm:"foreignKey:EmployeeID" json:"employee,omitempty"`
}

// PostComment is a reader comment on a post.
type PostComment struct {
	BaseModel
	CommentedBy string      `gorm:"size:255" json:"commentedBy,omitempty"`
	Comment     string      `gorm:"size:5000" json:"comment,omitempty"`
	CommentType CommentType `gorm:"size:30" json:"commentType,omitempty"`
	CommentedOn *time.Time  `json:"commentedOn,omitempty"`
}

// PostPhoto is an image attached to a post, uploaded by an employee.
type PostPhoto struct {
	BaseModel
	Sequence         int        `json:"sequence,omitempty"`
	Title            string     `gorm:"size:255" json:"title,omitempty"`
	Description      string     `gorm:"size:2000" json:"description,omitempty"`
	Image            []byte     `json:"image,omitempty"`
	ImageContentType string     `gorm:"size:100" json:"imageContentType,omitempty"`
	UploadedOn       *time.Time `json:"uploadedOn,omitempty"`
	PostID           *string    `gorm:"size:36" json:"-"`
	Post             *Post      `gorm:"foreignKey:PostID" json:"post,omitempty"`
	UploadedByID     *string    `gorm:"size:36" json:"-"`
	UploadedBy       *Employee  `gorm:"foreignKey:UploadedByID" json:"uploadedBy,omitempty"`
}
