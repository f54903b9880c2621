package services

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/dmitrijs2005/versioncheck/internal/client/models"
	"github.com/dmitrijs2005/versioncheck/internal/common"
	"github.com/stretchr/testify/require"
)

// fakeCatalogAPI records the last call of each kind.
type fakeCatalogAPI struct {
	Groups []models.AppGroup
	Apps   []models.App
	Err    error

	Calls         []string
	LastGroupForm models.AppGroupForm
	LastAppForm   models.AppForm
	LastID        string
	LastFilename  string
	LastUpload    string
}

func (f *fakeCatalogAPI) record(call, id string) { f.Calls = append(f.Calls, call); f.LastID = id }

func (f *fakeCatalogAPI) ListAppGroups(ctx context.Context) ([]models.AppGroup, error) {
	f.record("ListAppGroups", "")
	return f.Groups, f.Err
}

func (f *fakeCatalogAPI) CreateAppGroup(ctx context.Context, form models.AppGroupForm) (models.AppGroup, error) {
	f.record("CreateAppGroup", "")
	f.LastGroupForm = form
	return models.AppGroup{ID: "new", GroupName: form.GroupName}, f.Err
}

func (f *fakeCatalogAPI) UpdateAppGroup(ctx context.Context, id string, form models.AppGroupForm) (models.AppGroup, error) {
	f.record("UpdateAppGroup", id)
	f.LastGroupForm = form
	return models.AppGroup{ID: id, GroupName: form.GroupName}, f.Err
}

func (f *fakeCatalogAPI) DeleteAppGroup(ctx context.Context, id string) error {
	f.record("DeleteAppGroup", id)
	return f.Err
}

func (f *fakeCatalogAPI) UploadAppGroupImage(ctx context.Context, id, filename string, r io.Reader) error {
	f.record("UploadAppGroupImage", id)
	return f.readUpload(filename, r)
}

func (f *fakeCatalogAPI) ListApps(ctx context.Context, groupID string) ([]models.App, error) {
	f.record("ListApps", groupID)
	return f.Apps, f.Err
}

func (f *fakeCatalogAPI) CreateApp(ctx context.Context, form models.AppForm) (models.App, error) {
	f.record("CreateApp", "")
	f.LastAppForm = form
	return models.App{ID: "new", AppName: form.AppName}, f.Err
}

func (f *fakeCatalogAPI) UpdateApp(ctx context.Context, id string, form models.AppForm) (models.App, error) {
	f.record("UpdateApp", id)
	f.LastAppForm = form
	return models.App{ID: id, AppName: form.AppName}, f.Err
}

func (f *fakeCatalogAPI) DeleteApp(ctx context.Context, id string) error {
	f.record("DeleteApp", id)
	return f.Err
}

func (f *fakeCatalogAPI) UploadAppImage(ctx context.Context, id, filename string, r io.Reader) error {
	f.record("UploadAppImage", id)
	return f.readUpload(filename, r)
}

func (f *fakeCatalogAPI) readUpload(filename string, r io.Reader) error {
	b, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	f.LastFilename = filename
	f.LastUpload = string(b)
	return f.Err
}

func validAppForm() models.AppForm {
	return models.AppForm{
		AppName:                  " Shop ",
		BundleID:                 "com.example.shop",
		MinimumTargetVersion:     "1.0.0",
		RecommendedTargetVersion: "1.2.0",
		PlatformName:             "ios",
		AppGroupID:               "g1",
	}
}

func TestSaveGroup_CreateOrUpdate(t *testing.T) {
	api := &fakeCatalogAPI{}
	svc := NewCatalogService(api)
	ctx := context.Background()

	g, err := svc.SaveGroup(ctx, "", models.AppGroupForm{GroupName: " Retail ", AppDescription: "Shops"})
	require.NoError(t, err)
	require.Equal(t, "new", g.ID)
	require.Equal(t, "Retail", api.LastGroupForm.GroupName)

	g, err = svc.SaveGroup(ctx, "g1", models.AppGroupForm{GroupName: "Retail", AppDescription: "Stores"})
	require.NoError(t, err)
	require.Equal(t, "g1", g.ID)
	require.Equal(t, []string{"CreateAppGroup", "UpdateAppGroup"}, api.Calls)
}

func TestSaveGroup_InvalidFormSendsNothing(t *testing.T) {
	api := &fakeCatalogAPI{}
	_, err := NewCatalogService(api).SaveGroup(context.Background(), "", models.AppGroupForm{GroupName: "  "})

	require.ErrorIs(t, err, common.ErrValidation)
	require.Len(t, models.FieldErrors(err), 2)
	require.Empty(t, api.Calls)
}

func TestSaveApp_NormalizesPlatform(t *testing.T) {
	api := &fakeCatalogAPI{}
	svc := NewCatalogService(api)

	app, err := svc.SaveApp(context.Background(), "", validAppForm())
	require.NoError(t, err)
	require.Equal(t, "Shop", app.AppName)
	require.Equal(t, models.PlatformIOS, api.LastAppForm.PlatformName)

	_, err = svc.SaveApp(context.Background(), "a1", validAppForm())
	require.NoError(t, err)
	require.Equal(t, []string{"CreateApp", "UpdateApp"}, api.Calls)
	require.Equal(t, "a1", api.LastID)
}

func TestSaveApp_UnknownPlatform(t *testing.T) {
	api := &fakeCatalogAPI{}
	form := validAppForm()
	form.PlatformName = "Symbian"

	_, err := NewCatalogService(api).SaveApp(context.Background(), "", form)
	require.ErrorIs(t, err, common.ErrValidation)
	require.Equal(t, []models.FieldError{{Field: "platformName", Message: "Please select a platform"}}, models.FieldErrors(err))
	require.Empty(t, api.Calls)
}

func TestDeleteAndList_RequireIDs(t *testing.T) {
	api := &fakeCatalogAPI{}
	svc := NewCatalogService(api)
	ctx := context.Background()

	require.ErrorIs(t, svc.DeleteGroup(ctx, ""), common.ErrValidation)
	require.ErrorIs(t, svc.DeleteApp(ctx, " "), common.ErrValidation)
	_, err := svc.Apps(ctx, "")
	require.ErrorIs(t, err, common.ErrValidation)
	require.Empty(t, api.Calls)

	require.NoError(t, svc.DeleteGroup(ctx, "g1"))
	require.NoError(t, svc.DeleteApp(ctx, "a1"))
	_, err = svc.Apps(ctx, "g1")
	require.NoError(t, err)
	require.Equal(t, []string{"DeleteAppGroup", "DeleteApp", "ListApps"}, api.Calls)
}

func TestUploadImages(t *testing.T) {
	path := filepath.Join(t.TempDir(), "icon.png")
	require.NoError(t, os.WriteFile(path, []byte("pixels"), 0o600))

	api := &fakeCatalogAPI{}
	svc := NewCatalogService(api)

	require.NoError(t, svc.UploadAppImage(context.Background(), "a1", path))
	require.Equal(t, "icon.png", api.LastFilename)
	require.Equal(t, "pixels", api.LastUpload)

	require.NoError(t, svc.UploadGroupImage(context.Background(), "g1", path))
	require.Equal(t, "g1", api.LastID)
}

func TestUploadImage_MissingFile(t *testing.T) {
	api := &fakeCatalogAPI{}
	err := NewCatalogService(api).UploadAppImage(context.Background(), "a1", filepath.Join(t.TempDir(), "nope.png"))

	require.ErrorIs(t, err, os.ErrNotExist)
	require.Empty(t, api.Calls)
}

func TestGroups_PropagatesAPIError(t *testing.T) {
	api := &fakeCatalogAPI{Err: common.ErrSessionExpired}
	_, err := NewCatalogService(api).Groups(context.Background())
	require.ErrorIs(t, err, common.ErrSessionExpired)
}
