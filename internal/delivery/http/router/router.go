// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"vidtube/internal/delivery/http/middleware"
	"vidtube/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler         *handler.UserHandler
	VideoHandler        *handler.VideoHandler
	CommentHandler      *handler.CommentHandler
	LikeHandler         *handler.LikeHandler
	PlaylistHandler     *handler.PlaylistHandler
	SubscriptionHandler *handler.SubscriptionHandler
	TweetHandler        *handler.TweetHandler
	DashboardHandler    *handler.DashboardHandler
	AuthMiddleware      *middleware.AuthMiddleware
	RequestIDMiddleware *middleware.RequestIDMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	auth := r.params.AuthMiddleware

	e.Use(r.params.RequestIDMiddleware.Process)

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api/v1")

	// Account and session routes
	users := api.Group("/users")
	{
		users.POST("/register", r.params.UserHandler.RegisterUser)
		users.POST("/login", r.params.UserHandler.Login)
		users.POST("/refresh-token", r.params.UserHandler.RefreshToken)

		users.POST("/logout", r.params.UserHandler.Logout, auth.Authenticate)
		users.POST("/change-password", r.params.UserHandler.ChangePassword, auth.Authenticate)
		users.GET("/current-user", r.params.UserHandler.CurrentUser, auth.Authenticate)
		users.PATCH("/update-account", r.params.UserHandler.UpdateAccount, auth.Authenticate)
		users.PATCH("/avatar", r.params.UserHandler.UpdateAvatar, auth.Authenticate)
		users.PATCH("/cover-image", r.params.UserHandler.UpdateCoverImage, auth.Authenticate)
		users.GET("/history", r.params.UserHandler.WatchHistory, auth.Authenticate)

		// Public channel page; the viewer identity only refines the response.
		users.GET("/c/:username", r.params.UserHandler.ChannelProfile, auth.OptionalAuthenticate)
		users.GET("/c/:username/qr", r.params.UserHandler.ChannelQR, auth.Authenticate)
	}

	// Video routes
	videos := api.Group("/videos")
	{
		videos.GET("", r.params.VideoHandler.ListVideos, auth.OptionalAuthenticate)
		videos.POST("", r.params.VideoHandler.PublishVideo, auth.Authenticate)
		videos.GET("/:videoId", r.params.VideoHandler.GetVideo, auth.OptionalAuthenticate)
		videos.PATCH("/:videoId", r.params.VideoHandler.UpdateVideo, auth.Authenticate)
		videos.DELETE("/:videoId", r.params.VideoHandler.DeleteVideo, auth.Authenticate)
		videos.PATCH("/:videoId/toggle-publish", r.params.VideoHandler.TogglePublish, auth.Authenticate)
	}

	// Comment routes
	comments := api.Group("/comments")
	{
		comments.GET("/video/:videoId", r.params.CommentHandler.ListComments)
		comments.POST("/video/:videoId", r.params.CommentHandler.AddComment, auth.Authenticate)
		comments.PATCH("/:commentId", r.params.CommentHandler.UpdateComment, auth.Authenticate)
		comments.DELETE("/:commentId", r.params.CommentHandler.DeleteComment, auth.Authenticate)
	}

	// Like routes
	likes := api.Group("/likes", auth.Authenticate)
	{
		likes.POST("/toggle/video/:videoId", r.params.LikeHandler.ToggleVideoLike)
		likes.POST("/toggle/comment/:commentId", r.params.LikeHandler.ToggleCommentLike)
		likes.POST("/toggle/tweet/:tweetId", r.params.LikeHandler.ToggleTweetLike)
		likes.GET("/videos", r.params.LikeHandler.ListLikedVideos)
	}

	// Playlist routes
	playlists := api.Group("/playlists")
	{
		playlists.POST("", r.params.PlaylistHandler.CreatePlaylist, auth.Authenticate)
		playlists.GET("/:playlistId", r.params.PlaylistHandler.GetPlaylist)
		playlists.GET("/user/:userId", r.params.PlaylistHandler.ListUserPlaylists)
		playlists.PATCH("/:playlistId", r.params.PlaylistHandler.UpdatePlaylist, auth.Authenticate)
		playlists.DELETE("/:playlistId", r.params.PlaylistHandler.DeletePlaylist, auth.Authenticate)
		playlists.PATCH("/:playlistId/video/:videoId", r.params.PlaylistHandler.AddVideo, auth.Authenticate)
		playlists.DELETE("/:playlistId/video/:videoId", r.params.PlaylistHandler.RemoveVideo, auth.Authenticate)
	}

	// Subscription routes
	subscriptions := api.Group("/subscriptions")
	{
		subscriptions.POST("/channel/:channelId", r.params.SubscriptionHandler.ToggleSubscription, auth.Authenticate)
		subscriptions.GET("/channel/:channelId", r.params.SubscriptionHandler.ListSubscribers)
		subscriptions.GET("/subscribed", r.params.SubscriptionHandler.ListSubscribedChannels, auth.Authenticate)
	}

	// Tweet routes
	tweets := api.Group("/tweets")
	{
		tweets.POST("", r.params.TweetHandler.CreateTweet, auth.Authenticate)
		tweets.GET("/user/:userId", r.params.TweetHandler.ListUserTweets)
		tweets.PATCH("/:tweetId", r.params.TweetHandler.UpdateTweet, auth.Authenticate)
		tweets.DELETE("/:tweetId", r.params.TweetHandler.DeleteTweet, auth.Authenticate)
	}

	// Channel dashboard routes
	dashboard := api.Group("/dashboard", auth.Authenticate)
	{
		dashboard.GET("/stats", r.params.DashboardHandler.ChannelStats)
		dashboard.GET("/videos", r.params.DashboardHandler.ChannelVideos)
	}
}
