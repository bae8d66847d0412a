package http

import "github.com/gofiber/fiber/v2"

type Handler interface {
	Handle(ctx *fiber.Ctx) error
}

type HandlerTransport struct {
	// Detection
	DetectTextHandler  Handler
	DetectImageHandler Handler

	// Work
	PublishWorkHandler Handler
	GetWorkHandler     Handler
	ListWorksHandler   Handler
	DeleteWorkHandler  Handler

	// Comment
	CreateCommentHandler Handler
	ListCommentsHandler  Handler

	// Bookmark
	ToggleBookmarkHandler Handler
	ListBookmarksHandler  Handler

	// Follow
	ToggleFollowHandler Handler

	// User
	GetUserHandler    Handler
	UpdateUserHandler Handler

	// Feed
	FeedHandler    Handler
	ExploreHandler Handler

	// Thread
	ListThreadsHandler Handler

	// Storage
	PresignUploadHandler Handler

	// Version
	GetVersionHandler Handler
}
