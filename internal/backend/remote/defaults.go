package remote

import "regexp"

const (
	defaultCloudAddress = "https://xray.cloud.getxray.app"

	serverImportPath       = "/rest/raven/1.0/import/execution"
	cloudImportPath        = "/api/v2/import/execution"
	cloudAuthenticatePath  = "/api/v2/authenticate"
	contentTypeJSON        = "application/json"
	headerContentType      = "Content-Type"
	multipartResultsServer = "file"
	multipartResultsCloud  = "results"
	multipartInfo          = "info"
)

var (
	authorizationRegexp   = regexp.MustCompile(`Authorization:.*`)
	setCookieHeaderRegexp = regexp.MustCompile(`Set-Cookie:.*`)
)
