package cli

import (
	"context"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/dmitrijs2005/versioncheck/internal/client/models"
)

// Groups lists every app group.
func (a *App) Groups(ctx context.Context) error {
	groups, err := a.catalog.Groups(ctx)
	if err != nil {
		return err
	}
	if len(groups) == 0 {
		a.println("No app groups")
		return nil
	}

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tDESCRIPTION")
	for _, g := range groups {
		fmt.Fprintln(tw, g.String())
	}
	return tw.Flush()
}

func (a *App) AddGroup(ctx context.Context) error {
	form, err := a.groupForm(models.AppGroup{})
	if err != nil {
		return err
	}
	g, err := a.catalog.SaveGroup(ctx, "", form)
	if err != nil {
		return err
	}
	a.printf("Created app group %s\n", g.ID)
	return nil
}

// EditGroup prompts for each field with the current value as default.
func (a *App) EditGroup(ctx context.Context, id string) error {
	current, err := a.findGroup(ctx, id)
	if err != nil {
		return err
	}
	form, err := a.groupForm(current)
	if err != nil {
		return err
	}
	if _, err := a.catalog.SaveGroup(ctx, id, form); err != nil {
		return err
	}
	a.printf("Updated app group %s\n", id)
	return nil
}

func (a *App) DeleteGroup(ctx context.Context, id string) error {
	ok, err := Confirm(a.reader, fmt.Sprintf("Delete app group %s?", id), a.out)
	if err != nil {
		return err
	}
	if !ok {
		a.println("Cancelled")
		return nil
	}
	if err := a.catalog.DeleteGroup(ctx, id); err != nil {
		return err
	}
	a.printf("Deleted app group %s\n", id)
	return nil
}

func (a *App) GroupImage(ctx context.Context, id, path string) error {
	if err := a.catalog.UploadGroupImage(ctx, id, path); err != nil {
		return err
	}
	a.printf("Uploaded image for app group %s\n", id)
	return nil
}

// Apps lists the apps of one group.
func (a *App) Apps(ctx context.Context, groupID string) error {
	apps, err := a.catalog.Apps(ctx, groupID)
	if err != nil {
		return err
	}
	if len(apps) == 0 {
		a.println("No apps in this group")
		return nil
	}

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tPLATFORM\tBUNDLE ID\tMINIMUM\tRECOMMENDED")
	for _, app := range apps {
		fmt.Fprintln(tw, app.String())
	}
	return tw.Flush()
}

func (a *App) AddApp(ctx context.Context, groupID string) error {
	form, err := a.appForm(models.App{})
	if err != nil {
		return err
	}
	form.AppGroupID = groupID

	app, err := a.catalog.SaveApp(ctx, "", form)
	if err != nil {
		return err
	}
	a.printf("Created app %s\n", app.ID)
	return nil
}

func (a *App) EditApp(ctx context.Context, groupID, id string) error {
	current, err := a.findApp(ctx, groupID, id)
	if err != nil {
		return err
	}
	form, err := a.appForm(current)
	if err != nil {
		return err
	}
	form.AppGroupID = groupID

	if _, err := a.catalog.SaveApp(ctx, id, form); err != nil {
		return err
	}
	a.printf("Updated app %s\n", id)
	return nil
}

func (a *App) DeleteApp(ctx context.Context, id string) error {
	ok, err := Confirm(a.reader, fmt.Sprintf("Delete app %s?", id), a.out)
	if err != nil {
		return err
	}
	if !ok {
		a.println("Cancelled")
		return nil
	}
	if err := a.catalog.DeleteApp(ctx, id); err != nil {
		return err
	}
	a.printf("Deleted app %s\n", id)
	return nil
}

func (a *App) AppImage(ctx context.Context, id, path string) error {
	if err := a.catalog.UploadAppImage(ctx, id, path); err != nil {
		return err
	}
	a.printf("Uploaded image for app %s\n", id)
	return nil
}

func (a *App) findGroup(ctx context.Context, id string) (models.AppGroup, error) {
	groups, err := a.catalog.Groups(ctx)
	if err != nil {
		return models.AppGroup{}, err
	}
	for _, g := range groups {
		if g.ID == id {
			return g, nil
		}
	}
	return models.AppGroup{}, fmt.Errorf("app group %s not found", id)
}

func (a *App) findApp(ctx context.Context, groupID, id string) (models.App, error) {
	apps, err := a.catalog.Apps(ctx, groupID)
	if err != nil {
		return models.App{}, err
	}
	for _, app := range apps {
		if app.ID == id {
			return app, nil
		}
	}
	return models.App{}, fmt.Errorf("app %s not found in group %s", id, groupID)
}

func (a *App) groupForm(current models.AppGroup) (models.AppGroupForm, error) {
	var form models.AppGroupForm
	var err error

	if form.GroupName, err = GetTextWithDefault(a.reader, "Group name", current.GroupName, a.out); err != nil {
		return form, err
	}
	if form.AppDescription, err = GetTextWithDefault(a.reader, "Description", current.AppDescription, a.out); err != nil {
		return form, err
	}
	return form, nil
}

func (a *App) appForm(current models.App) (models.AppForm, error) {
	var form models.AppForm
	fields := []struct {
		prompt string
		def    string
		dst    *string
	}{
		{"App name", current.AppName, &form.AppName},
		{"Bundle ID", current.BundleID, &form.BundleID},
		{"Minimum target version", current.MinimumTargetVersion, &form.MinimumTargetVersion},
		{"Recommended target version", current.RecommendedTargetVersion, &form.RecommendedTargetVersion},
		{"Platform (" + strings.Join(models.Platforms, "/") + ")", current.PlatformName, &form.PlatformName},
	}
	for _, f := range fields {
		v, err := GetTextWithDefault(a.reader, f.prompt, f.def, a.out)
		if err != nil {
			return form, err
		}
		*f.dst = v
	}
	return form, nil
}
