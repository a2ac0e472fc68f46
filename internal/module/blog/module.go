package blog

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/monjurmorshed793/banbeis-blog/internal/crud"
	"github.com/monjurmorshed793/banbeis-blog/internal/domain"
)

// Allowed fields for sorting and filtering in List queries.
var (
	postSortFields   = []string{"id", "post_date", "title", "publish", "published_on", "created_at"}
	postFilterFields = []string{"title", "publish", "center_id", "employee_id"}

	postCommentSortFields   = []string{"id", "commented_by", "comment_type", "commented_on", "created_at"}
	postCommentFilterFields = []string{"commented_by", "comment_type"}

	postPhotoSortFields   = []string{"id", "sequence", "title", "uploaded_on", "created_at"}
	postPhotoFilterFields = []string{"title", "post_id", "uploaded_by_id"}
)

// Module serves the editorial content: posts, post comments, and post photos.
type Module struct {
	posts        *crud.Handler[domain.Post, PostPatch]
	postComments *crud.Handler[domain.PostComment, PostCommentPatch]
	postPhotos   *crud.Handler[domain.PostPhoto, PostPhotoPatch]
}

// NewModule wires repositories, services, and handlers for the editorial
// entities on the given database.
func NewModule(db *gorm.DB) *Module {
	postSvc := crud.NewService(
		crud.NewRepository[domain.Post](db, crud.Options{
			SortFields:   postSortFields,
			FilterFields: postFilterFields,
			Preloads:     []string{"Center", "Employee"},
			Cascade: func(tx *gorm.DB, id string) error {
				return tx.Delete(&domain.PostPhoto{}, "post_id = ?", id).Error
			},
		}),
		crud.WithBeforeSave(func(p *domain.Post) error {
			p.CenterID = domain.RefID(p.Center)
			p.EmployeeID = domain.RefID(p.Employee)
			return nil
		}),
	)

	postCommentSvc := crud.NewService(
		crud.NewRepository[domain.PostComment](db, crud.Options{
			SortFields:   postCommentSortFields,
			FilterFields: postCommentFilterFields,
		}),
	)

	postPhotoSvc := crud.NewService(
		crud.NewRepository[domain.PostPhoto](db, crud.Options{
			SortFields:   postPhotoSortFields,
			FilterFields: postPhotoFilterFields,
			Preloads:     []string{"Post", "UploadedBy"},
		}),
		crud.WithBeforeSave(func(pp *domain.PostPhoto) error {
			pp.PostID = domain.RefID(pp.Post)
			pp.UploadedByID = domain.RefID(pp.UploadedBy)
			return nil
		}),
	)

	return &Module{
		posts:        crud.NewHandler("posts", postSvc, applyPostPatch),
		postComments: crud.NewHandler("post-comments", postCommentSvc, applyPostCommentPatch),
		postPhotos:   crud.NewHandler("post-photos", postPhotoSvc, applyPostPhotoPatch),
	}
}

// RegisterRoutes registers the editorial entity routes.
func (m *Module) RegisterRoutes(api *gin.RouterGroup) {
	m.posts.Register(api)
	m.postComments.Register(api)
	m.postPhotos.Register(api)
}
