package blog

import (
	"time"

	"github.com/monjurmorshed793/banbeis-blog/internal/crud"
	"github.com/monjurmorshed793/banbeis-blog/internal/domain"
)

// PostPatch is the merge-patch document for posts.
type PostPatch struct {
	crud.PatchBase
	PostDate    *domain.LocalDate `json:"postDate"`
	Title       *string           `json:"title"`
	Body        *string           `json:"body"`
	Publish     *bool             `json:"publish"`
	PublishedOn *time.Time        `json:"publishedOn"`
}

func applyPostPatch(post *domain.Post, p PostPatch) {
	if p.PostDate != nil {
		post.PostDate = p.PostDate
	}
	if p.Title != nil {
		post.Title = *p.Title
	}
	if p.Body != nil {
		post.Body = *p.Body
	}
	if p.Publish != nil {
		post.Publish = *p.Publish
	}
	if p.PublishedOn != nil {
		post.PublishedOn = p.PublishedOn
	}
}

// PostCommentPatch is the merge-patch document for post comments.
type PostCommentPatch struct {
	crud.PatchBase
	CommentedBy *string             `json:"commentedBy"`
	Comment     *string             `json:"comment"`
	CommentType *domain.CommentType `json:"commentType"`
	CommentedOn *time.Time          `json:"commentedOn"`
}

func applyPostCommentPatch(pc *domain.PostComment, p PostCommentPatch) {
	if p.CommentedBy != nil {
		pc.CommentedBy = *p.CommentedBy
	}
	if p.Comment != nil {
		pc.Comment = *p.Comment
	}
	if p.CommentType != nil {
		pc.CommentType = *p.CommentType
	}
	if p.CommentedOn != nil {
		pc.CommentedOn = p.CommentedOn
	}
}

// PostPhotoPatch is the merge-patch document for post photos.
type PostPhotoPatch struct {
	crud.PatchBase
	Sequence         *int       `json:"sequence"`
	Title            *string    `json:"title"`
	Description      *string    `json:"description"`
	Image            []byte     `json:"image"`
	ImageContentType *string    `json:"imageContentType"`
	UploadedOn       *time.Time `json:"uploadedOn"`
}

func applyPostPhotoPatch(pp *domain.PostPhoto, p PostPhotoPatch) {
	if p.Sequence != nil {
		pp.Sequence = *p.Sequence
	}
	if p.Title != nil {
		pp.Title = *p.Title
	}
	if p.Description != nil {
		pp.Description = *p.Description
	}
	if p.Image != nil {
		pp.Image = p.Image
	}
	if p.ImageContentType != nil {
		pp.ImageContentType = *p.ImageContentType
	}
	if p.UploadedOn != nil {
		pp.UploadedOn = p.UploadedOn
	}
}
