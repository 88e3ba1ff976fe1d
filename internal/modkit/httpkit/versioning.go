package httpkit

import (
	"net/http"
	"strings"
)

// V1 is the only API version served today
const V1 = "v1"

// APIPrefix returns the mount point for a version, "v1" and "/v1" both give "/api/v1"
func APIPrefix(version string) string {
	return "/api/" + strings.Trim(version, "/")
}

// MountAPI scopes mw to /api/{version} and hands the scoped router to mount
//
//	httpkit.MountAPI(r, httpkit.V1, httpkit.Stack(o), func(api httpkit.Router) {
//		modkit.Mount(api, reg, mods...)
//	})
func MountAPI(r Router, version string, mw []func(http.Handler) http.Handler, mount func(Router)) {
	r.Route(APIPrefix(version), func(api Router) {
		if len(mw) > 0 {
			api.Use(mw...)
		}
		mount(api)
	})
}
