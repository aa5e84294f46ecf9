package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "vidtube/internal/delivery/context"
	"vidtube/internal/domain/entity"
	domainerrors "vidtube/internal/domain/errors"
	"vidtube/internal/domain/repository"
	"vidtube/internal/domain/service"
	"vidtube/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// videoService implements the VideoUsecase interface.
type videoService struct {
	videoRepo  repository.VideoRepository
	userRepo   repository.UserRepository
	mediaStore service.MediaStore
	publisher  service.EventPublisher
	logger     *slog.Logger
}

// VideoServiceParams holds dependencies for VideoService, injected by Fx.
type VideoServiceParams struct {
	fx.In

	VideoRepo  repository.VideoRepository
	UserRepo   repository.UserRepository
	MediaStore service.MediaStore
	Publisher  service.EventPublisher
	Logger     *slog.Logger
}

// NewVideoService is the constructor for videoService.
func NewVideoService(params VideoServiceParams) usecase.VideoUsecase {
	return &videoService{
		videoRepo:  params.VideoRepo,
		userRepo:   params.UserRepo,
		mediaStore: params.MediaStore,
		publisher:  params.Publisher,
		logger:     params.Logger,
	}
}

func (srv *videoService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// PublishVideo stores the media files, creates the record and emits a
// published event for subscriber fan-out.
func (srv *videoService) PublishVideo(ctx context.Context, input *usecase.PublishVideoInput) (*entity.Video, error) {
	owner, err := srv.userRepo.FindByID(ctx, input.OwnerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load owner")
	}

	videoURL, err := srv.storeUpload(ctx, input.VideoFile)
	if err != nil {
		return nil, err
	}

	thumbURL, err := srv.storeUpload(ctx, input.Thumbnail)
	if err != nil {
		srv.removeMedia(ctx, videoURL)

		return nil, err
	}

	video := &entity.Video{
		OwnerID:     owner.ID,
		Title:       input.Title,
		Description: input.Description,
		VideoFile:   videoURL,
		Thumbnail:   thumbURL,
		Duration:    input.Duration,
		IsPublished: true,
	}

	if err := srv.videoRepo.Create(ctx, video); err != nil {
		srv.removeMedia(ctx, videoURL)
		srv.removeMedia(ctx, thumbURL)

		return nil, err
	}

	srv.log(ctx).Info("Video published", slog.Any("videoID", video.ID), slog.Any("ownerID", owner.ID))

	srv.publishEvent(ctx, video, owner)

	video.Owner = owner.Sanitized()

	return video, nil
}

// GetVideo loads a video, bumps its view counter and records the watch in the
// viewer's history when authenticated.
func (srv *videoService) GetVideo(ctx context.Context, videoID, viewerID uuid.UUID) (*entity.Video, error) {
	video, err := srv.videoRepo.FindByID(ctx, videoID)
	if err != nil {
		return nil, srv.notFoundOr(err, "failed to load video")
	}

	// Unpublished videos are visible to their owner only.
	if !video.IsPublished && video.OwnerID != viewerID {
		return nil, errors.Wrap(domainerrors.ErrVideoNotFound, "video not found")
	}

	if err := srv.videoRepo.IncrementViews(ctx, videoID); err != nil {
		srv.log(ctx).Warn("Failed to increment views", slog.Any("videoID", videoID), slog.Any("error", err))
	} else {
		video.Views++
	}

	if viewerID != uuid.Nil {
		if err := srv.userRepo.AddWatchEntry(ctx, viewerID, videoID); err != nil {
			srv.log(ctx).Warn("Failed to record watch entry", slog.Any("videoID", videoID), slog.Any("error", err))
		}
	}

	return video, nil
}

// ListVideos returns a page of videos.
func (srv *videoService) ListVideos(ctx context.Context, input *usecase.ListVideosInput) (*entity.VideoPage, error) {
	opts := &entity.VideoListOptions{
		Page:      input.Page,
		Limit:     input.Limit,
		Query:     input.Query,
		OwnerID:   input.OwnerID,
		SortBy:    input.SortBy,
		SortOrder: input.SortOrder,

		// Drafts are only visible when the requester lists their own channel.
		IncludeUnpublished: input.OwnerID != uuid.Nil && input.OwnerID == input.RequesterID,
	}

	page, err := srv.videoRepo.List(ctx, opts)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list videos")
	}

	return page, nil
}

// UpdateVideo modifies title, description or thumbnail. Owner only.
func (srv *videoService) UpdateVideo(ctx context.Context, input *usecase.UpdateVideoInput) (*entity.Video, error) {
	video, err := srv.videoRepo.FindByID(ctx, input.VideoID)
	if err != nil {
		return nil, srv.notFoundOr(err, "failed to load video")
	}

	if video.OwnerID != input.RequesterID {
		return nil, errors.Wrap(domainerrors.ErrForbidden, "only the owner may update a video")
	}

	if input.Title != "" {
		video.Title = input.Title
	}
	if input.Description != "" {
		video.Description = input.Description
	}

	oldThumbnail := ""
	if input.Thumbnail != nil {
		url, storeErr := srv.storeUpload(ctx, input.Thumbnail)
		if storeErr != nil {
			return nil, storeErr
		}
		oldThumbnail = video.Thumbnail
		video.Thumbnail = url
	}

	if err := srv.videoRepo.Update(ctx, video); err != nil {
		if input.Thumbnail != nil {
			srv.removeMedia(ctx, video.Thumbnail)
		}

		return nil, err
	}

	srv.removeMedia(ctx, oldThumbnail)

	srv.log(ctx).Info("Video updated", slog.Any("videoID", video.ID))

	return video, nil
}

// DeleteVideo removes the video and its media files. Owner only.
func (srv *videoService) DeleteVideo(ctx context.Context, videoID, requesterID uuid.UUID) error {
	video, err := srv.videoRepo.FindByID(ctx, videoID)
	if err != nil {
		return srv.notFoundOr(err, "failed to load video")
	}

	if video.OwnerID != requesterID {
		return errors.Wrap(domainerrors.ErrForbidden, "only the owner may delete a video")
	}

	if err := srv.videoRepo.Delete(ctx, videoID); err != nil {
		return err
	}

	srv.removeMedia(ctx, video.VideoFile)
	srv.removeMedia(ctx, video.Thumbnail)

	srv.log(ctx).Info("Video deleted", slog.Any("videoID", videoID))

	return nil
}

// TogglePublishStatus flips the published flag. Owner only.
func (srv *videoService) TogglePublishStatus(ctx context.Context, videoID, requesterID uuid.UUID) (*entity.Video, error) {
	video, err := srv.videoRepo.FindByID(ctx, videoID)
	if err != nil {
		return nil, srv.notFoundOr(err, "failed to load video")
	}

	if video.OwnerID != requesterID {
		return nil, errors.Wrap(domainerrors.ErrForbidden, "only the owner may change publish status")
	}

	video.IsPublished = !video.IsPublished

	if err := srv.videoRepo.Update(ctx, video); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Video publish status toggled",
		slog.Any("videoID", video.ID),
		slog.Bool("isPublished", video.IsPublished),
	)

	return video, nil
}

// publishEvent emits the published event. Failures are logged, never fatal:
// the upload already succeeded and fan-out can lag behind.
func (srv *videoService) publishEvent(ctx context.Context, video *entity.Video, owner *entity.User) {
	event := &service.VideoPublishedEvent{
		RequestID:   deliverycontext.GetRequestIDFromContext(ctx),
		VideoID:     video.ID.String(),
		ChannelID:   owner.ID.String(),
		ChannelName: owner.Username,
		Title:       video.Title,
		Thumbnail:   video.Thumbnail,
		PublishedAt: time.Now().UTC().Format(time.RFC3339),
	}

	if err := srv.publisher.PublishVideoEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish video event", slog.Any("videoID", video.ID), slog.Any("error", err))
	}
}

func (srv *videoService) notFoundOr(err error, msg string) error {
	if errors.Is(err, repository.ErrVideoNotFound) {
		return errors.Wrap(domainerrors.ErrVideoNotFound, "video not found")
	}

	return errors.Wrap(err, msg)
}

func (srv *videoService) storeUpload(ctx context.Context, file *usecase.FileUpload) (string, error) {
	if file == nil {
		return "", domainerrors.ErrValidationFailed.WrapMessage("file is required")
	}

	url, err := srv.mediaStore.Store(ctx, file.Filename, file.ContentType, file.Reader)
	if err != nil {
		if errors.Is(err, domainerrors.ErrMediaTooLarge) {
			return "", err
		}

		return "", domainerrors.ErrMediaUploadFailed.WrapMessage(err.Error())
	}

	return url, nil
}

func (srv *videoService) removeMedia(ctx context.Context, url string) {
	if url == "" {
		return
	}
	if err := srv.mediaStore.Remove(ctx, url); err != nil {
		srv.log(ctx).Warn("Failed to remove media object", slog.String("url", url), slog.Any("error", err))
	}
}
