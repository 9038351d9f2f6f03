package service

import (
	"context"

	"github.com/MKhiriev/go-account-checker/models"
)

type appInfoService struct {
	appVersion string
}

// NewAppInfoService returns an [AppInfoService] reporting version, or the
// build version when version is empty.
func NewAppInfoService(version string, buildInfo models.AppBuildInfo) AppInfoService {
	if version == "" {
		version = buildInfo.BuildVersion()
	}

	return &appInfoService{appVersion: version}
}

func (s *appInfoService) GetAppVersion(_ context.Context) string {
	return s.appVersion
}
