package services

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/versioncheck/internal/client/models"
	"github.com/dmitrijs2005/versioncheck/internal/filex"
)

// MaxImageSize caps image uploads.
const MaxImageSize = 5 << 20

// CatalogService manages app groups and apps.
//
// Save* create when id is empty and update otherwise. Forms are validated
// before any request is sent; a failed validation matches
// common.ErrValidation.
type CatalogService interface {
	Groups(ctx context.Context) ([]models.AppGroup, error)
	SaveGroup(ctx context.Context, id string, form models.AppGroupForm) (models.AppGroup, error)
	DeleteGroup(ctx context.Context, id string) error
	UploadGroupImage(ctx context.Context, id, path string) error

	Apps(ctx context.Context, groupID string) ([]models.App, error)
	SaveApp(ctx context.Context, id string, form models.AppForm) (models.App, error)
	DeleteApp(ctx context.Context, id string) error
	UploadAppImage(ctx context.Context, id, path string) error
}

// CatalogAPI is the remote side of the catalog; *client.APIClient satisfies it.
type CatalogAPI interface {
	ListAppGroups(ctx context.Context) ([]models.AppGroup, error)
	CreateAppGroup(ctx context.Context, form models.AppGroupForm) (models.AppGroup, error)
	UpdateAppGroup(ctx context.Context, id string, form models.AppGroupForm) (models.AppGroup, error)
	DeleteAppGroup(ctx context.Context, id string) error
	UploadAppGroupImage(ctx context.Context, id, filename string, r io.Reader) error

	ListApps(ctx context.Context, groupID string) ([]models.App, error)
	CreateApp(ctx context.Context, form models.AppForm) (models.App, error)
	UpdateApp(ctx context.Context, id string, form models.AppForm) (models.App, error)
	DeleteApp(ctx context.Context, id string) error
	UploadAppImage(ctx context.Context, id, filename string, r io.Reader) error
}

type catalogService struct {
	api CatalogAPI
}

func NewCatalogService(api CatalogAPI) CatalogService {
	return &catalogService{api: api}
}

func requireID(field, id string) error {
	if strings.TrimSpace(id) == "" {
		return &models.ValidationError{Fields: []models.FieldError{{Field: field, Message: "ID is required"}}}
	}
	return nil
}

func (s *catalogService) Groups(ctx context.Context) ([]models.AppGroup, error) {
	return s.api.ListAppGroups(ctx)
}

func (s *catalogService) SaveGroup(ctx context.Context, id string, form models.AppGroupForm) (models.AppGroup, error) {
	form.GroupName = strings.TrimSpace(form.GroupName)
	form.AppDescription = strings.TrimSpace(form.AppDescription)
	if err := form.Validate(); err != nil {
		return models.AppGroup{}, err
	}

	if id == "" {
		return s.api.CreateAppGroup(ctx, form)
	}
	return s.api.UpdateAppGroup(ctx, id, form)
}

func (s *catalogService) DeleteGroup(ctx context.Context, id string) error {
	if err := requireID("id", id); err != nil {
		return err
	}
	return s.api.DeleteAppGroup(ctx, id)
}

func (s *catalogService) UploadGroupImage(ctx context.Context, id, path string) error {
	if err := requireID("id", id); err != nil {
		return err
	}
	return withImage(path, func(name string, r io.Reader) error {
		return s.api.UploadAppGroupImage(ctx, id, name, r)
	})
}

func (s *catalogService) Apps(ctx context.Context, groupID string) ([]models.App, error) {
	if err := requireID("appGroupID", groupID); err != nil {
		return nil, err
	}
	return s.api.ListApps(ctx, groupID)
}

func (s *catalogService) SaveApp(ctx context.Context, id string, form models.AppForm) (models.App, error) {
	form.AppName = strings.TrimSpace(form.AppName)
	form.BundleID = strings.TrimSpace(form.BundleID)
	form.MinimumTargetVersion = strings.TrimSpace(form.MinimumTargetVersion)
	form.RecommendedTargetVersion = strings.TrimSpace(form.RecommendedTargetVersion)
	if err := form.Validate(); err != nil {
		return models.App{}, err
	}
	form.PlatformName = models.NormalizePlatform(form.PlatformName)

	if id == "" {
		return s.api.CreateApp(ctx, form)
	}
	return s.api.UpdateApp(ctx, id, form)
}

func (s *catalogService) DeleteApp(ctx context.Context, id string) error {
	if err := requireID("id", id); err != nil {
		return err
	}
	return s.api.DeleteApp(ctx, id)
}

func (s *catalogService) UploadAppImage(ctx context.Context, id, path string) error {
	if err := requireID("id", id); err != nil {
		return err
	}
	return withImage(path, func(name string, r io.Reader) error {
		return s.api.UploadAppImage(ctx, id, name, r)
	})
}

func withImage(path string, upload func(name string, r io.Reader) error) error {
	f, err := filex.OpenRegular(path, MaxImageSize)
	if err != nil {
		return fmt.Errorf("image error: %w", err)
	}
	defer f.Close()

	return upload(filepath.Base(path), f)
}
