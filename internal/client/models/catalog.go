package models

// AppGroup is a named set of apps with an optional thumbnail.
type AppGroup struct {
	ID             string         `json:"id"`
	GroupName      string         `json:"groupName"`
	AppDescription string         `json:"appDescription"`
	Image          *AppGroupImage `json:"image,omitempty"`
	AppIDs         []string       `json:"appIds,omitempty"`
}

// AppGroupImage is a group thumbnail; Blob is a URL or base64 payload.
type AppGroupImage struct {
	ID   string `json:"id"`
	Blob string `json:"blob"`
}

// App is a mobile app whose minimum and recommended versions are tracked.
type App struct {
	ID                       string     `json:"id"`
	AppName                  string     `json:"appName"`
	BundleID                 string     `json:"bundleId"`
	MinimumTargetVersion     string     `json:"minimumTargetVersion"`
	RecommendedTargetVersion string     `json:"recommendedTargetVersion"`
	PlatformName             string     `json:"platformName"`
	LastUpdateDate           string     `json:"lastUpdateDate"`
	Images                   []AppImage `json:"images,omitempty"`
}

// AppImage is an icon or screenshot attached to an app.
type AppImage struct {
	ID   string `json:"id"`
	Blob string `json:"blob"`
	Type string `json:"type"`
}
