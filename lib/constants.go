package lib

import (
	"os/user"
	"path"

	"github.com/sirupsen/logrus"
)

const (
	// Config Variable
	DistributionName string = "HydrusAPI"
	// ClientAPIVersion is the client API version this binding was written
	// against. The service reports its own via the api_version endpoint.
	ClientAPIVersion int    = 4
	DefaultAPIURL    string = "http://127.0.0.1:45869"
	AccessKeyHeader  string = "Hydrus-Client-API-Access-Key"
	// Content types
	ContentTypeOctetStream string = "application/octet-stream"
	ContentTypeJson        string = "application/json"
	// APIs
	APIVersionApi            string = "/api_version"
	RequestNewPermissionsApi string = "/request_new_permissions"
	VerifyAccessKeyApi       string = "/verify_access_key"
	AddFileApi               string = "/add_files/add_file"
	CleanTagsApi             string = "/add_tags/clean_tags"
	GetTagServicesApi        string = "/add_tags/get_tag_services"
	AddTagsApi               string = "/add_tags/add_tags"
	GetURLFilesApi           string = "/add_urls/get_url_files"
	GetURLInfoApi            string = "/add_urls/get_url_info"
	AddURLApi                string = "/add_urls/add_url"
	AssociateURLApi          string = "/add_urls/associate_url"
	SearchFilesApi           string = "/get_files/search_files"
	FileMetadataApi          string = "/get_files/file_metadata"
	FileApi                  string = "/get_files/file"
	ThumbnailApi             string = "/get_files/thumbnail"
)

var (
	Logger = logrus.New()

	DefaultConfigPath     string
	DefaultConfigFilename = "config"
	DefaultLogPath        string
)

func init() {
	u, err := user.Current()
	if err != nil {
		return
	}
	DefaultConfigPath = path.Join(u.HomeDir, "."+DistributionName)
	DefaultLogPath = path.Join(u.HomeDir, "."+DistributionName, "log")
}
