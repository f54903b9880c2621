package models

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/versioncheck/internal/common"
)

// Supported platforms.
const (
	PlatformIOS     = "iOS"
	PlatformAndroid = "Android"
)

// Platforms lists the values accepted in AppForm.PlatformName.
var Platforms = []string{PlatformIOS, PlatformAndroid}

// FieldError is a single failed validation rule.
type FieldError struct {
	Field   string
	Message string
}

func (e FieldError) Error() string { return e.Message }

// ValidationError collects every failed rule of a form.
// It matches common.ErrValidation with errors.Is.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.Message)
	}
	return strings.Join(msgs, "; ")
}

func (e *ValidationError) Is(target error) bool { return target == common.ErrValidation }

// rule is one declarative check: the field name, its value and the message
// shown when the value is blank.
type rule struct {
	field, value, message string
}

func checkRequired(rules []rule) []FieldError {
	var errs []FieldError
	for _, r := range rules {
		if strings.TrimSpace(r.value) == "" {
			errs = append(errs, FieldError{Field: r.field, Message: r.message})
		}
	}
	return errs
}

// AppGroupForm is the payload of create-appgroup and update-appgroup.
type AppGroupForm struct {
	GroupName      string `json:"groupName"`
	AppDescription string `json:"appDescription"`
}

func (f AppGroupForm) Validate() error {
	errs := checkRequired([]rule{
		{"groupName", f.GroupName, "App Name is required"},
		{"appDescription", f.AppDescription, "Description is required"},
	})
	if len(errs) > 0 {
		return &ValidationError{Fields: errs}
	}
	return nil
}

// AppForm is the payload of create-app and update-app.
type AppForm struct {
	AppName                  string `json:"appName"`
	BundleID                 string `json:"bundleId"`
	MinimumTargetVersion     string `json:"minimumTargetVersion"`
	RecommendedTargetVersion string `json:"recommendedTargetVersion"`
	PlatformName             string `json:"platformName"`
	AppGroupID               string `json:"appGroupID"`
}

func (f AppForm) Validate() error {
	errs := checkRequired([]rule{
		{"appName", f.AppName, "App Name is required"},
		{"bundleId", f.BundleID, "Bundle ID is required"},
		{"minimumTargetVersion", f.MinimumTargetVersion, "Minimum Target Version is required"},
		{"recommendedTargetVersion", f.RecommendedTargetVersion, "Recommended Target Version is required"},
		{"appGroupID", f.AppGroupID, "App Group is required"},
	})

	switch {
	case strings.TrimSpace(f.PlatformName) == "":
		errs = append(errs, FieldError{Field: "platformName", Message: "Platform Name is required"})
	case NormalizePlatform(f.PlatformName) == "":
		errs = append(errs, FieldError{Field: "platformName", Message: "Please select a platform"})
	}

	if len(errs) > 0 {
		return &ValidationError{Fields: errs}
	}
	return nil
}

// NormalizePlatform maps user input case-insensitively onto one of
// Platforms, or returns "" when it matches none.
func NormalizePlatform(s string) string {
	for _, p := range Platforms {
		if strings.EqualFold(strings.TrimSpace(s), p) {
			return p
		}
	}
	return ""
}

// FieldErrors extracts the per-field failures from err, if any.
func FieldErrors(err error) []FieldError {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Fields
	}
	return nil
}

// String renders the app as a single table row.
func (a App) String() string {
	return fmt.Sprintf("%s\t%s\t%s\t%s\tmin %s\trec %s", a.ID, a.AppName, a.PlatformName, a.BundleID, a.MinimumTargetVersion, a.RecommendedTargetVersion)
}

// String renders the group as a single table row.
func (g AppGroup) String() string {
	return fmt.Sprintf("%s\t%s\t%s", g.ID, g.GroupName, g.AppDescription)
}
