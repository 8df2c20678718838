package server

import (
	"time"

	"scribe/internal/models"
)

// postSummary is a post list item: owner nickname joined in, content omitted.
type postSummary struct {
	PostID    uint      `json:"postId"`
	UserID    uint      `json:"userId"`
	Nickname  string    `json:"nickname"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	Likes     int       `json:"likes"`
}

// postDetail is the single-post view, including content.
type postDetail struct {
	PostID    uint      `json:"postId"`
	UserID    uint      `json:"userId"`
	Nickname  string    `json:"nickname"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	Likes     int       `json:"likes"`
}

// commentView is a comment list item with the owner nickname joined in.
type commentView struct {
	CommentID uint      `json:"commentId"`
	PostID    uint      `json:"postId"`
	UserID    uint      `json:"userId"`
	Nickname  string    `json:"nickname"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func newPostSummary(p *models.Post) postSummary {
	return postSummary{
		PostID:    p.ID,
		UserID:    p.UserID,
		Nickname:  p.User.Nickname,
		Title:     p.Title,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
		Likes:     p.Likes,
	}
}

func newPostDetail(p *models.Post) postDetail {
	return postDetail{
		PostID:    p.ID,
		UserID:    p.UserID,
		Nickname:  p.User.Nickname,
		Title:     p.Title,
		Content:   p.Content,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
		Likes:     p.Likes,
	}
}

func newCommentView(cm *models.Comment) commentView {
	return commentView{
		CommentID: cm.ID,
		PostID:    cm.PostID,
		UserID:    cm.UserID,
		Nickname:  cm.User.Nickname,
		Comment:   cm.Comment,
		CreatedAt: cm.CreatedAt,
		UpdatedAt: cm.UpdatedAt,
	}
}
