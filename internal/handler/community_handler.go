package handlers

import (
	"net/http"

	"womenhub/internal/format"
	"womenhub/internal/models"
	"womenhub/internal/service"
)

// PostView is one feed entry as shown to a reader. It is built per request
// from the stored post; nothing about the reader's interaction is kept.
type PostView struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Author    string `json:"author"`
	Category  string `json:"category"`
	Content   string `json:"content"`
	Likes     int    `json:"likes"`
	Replies   int    `json:"replies"`
	PostedAgo string `json:"postedAgo"`
	PostedOn  string `json:"postedOn"`
}

func (h *Handlers) newPostView(p models.CommunityPost) PostView {
	return PostView{
		ID:        p.ID,
		Title:     p.Title,
		Author:    p.AuthorName,
		Category:  p.Category,
		Content:   p.Content,
		Likes:     p.Likes,
		PostedAgo: format.TimeAgo(p.CreatedAt, h.Now()),
		PostedOn:  format.Date(p.CreatedAt),
	}
}

// ListPosts returns one page of the feed. ?category filters, ?limit caps how
// many posts are read, ?page and ?per_page select the page.
func (h *Handlers) ListPosts(w http.ResponseWriter, r *http.Request) {
	posts := h.CommunityService.List(r.Context(), r.URL.Query().Get("category"), queryInt(r, "limit", service.DefaultPostLimit))

	views := make([]PostView, 0, len(posts))
	for _, p := range posts {
		views = append(views, h.newPostView(p))
	}

	perPage := 0
	if h.Catalog != nil {
		perPage = h.Catalog.Pagination.Posts
	}
	page := format.Paginate(views, queryInt(r, "page", 1), queryInt(r, "per_page", 0), perPage)

	writeSuccess(w, page, http.StatusOK)
}

type PostRequest struct {
	UserID   int64  `json:"userId" validate:"gte=0"`
	Title    string `json:"title" validate:"required,max=200"`
	Content  string `json:"content" validate:"required,max=10000"`
	Category string `json:"category" validate:"max=100"`
}

func (h *Handlers) CreatePost(w http.ResponseWriter, r *http.Request) {
	var req PostRequest
	if !h.bind(w, r, &req) {
		return
	}

	id, err := h.CommunityService.Create(r.Context(), models.NewPost{
		UserID:   req.UserID,
		Title:    req.Title,
		Content:  req.Content,
		Category: req.Category,
	})
	if err != nil {
		writeAppError(w, err)
		return
	}

	writeSuccess(w, CreatedResponse{ID: id}, http.StatusCreated)
}
