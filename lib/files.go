package lib

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
)

// FileIdentity selects exactly one file, either by SHA256 hash or by the
// service's numeric file id. The two forms are mutually exclusive by
// construction; a nil identity is a usage error caught before any request.
type FileIdentity interface {
	fileParams() (url.Values, error)
}

// FileHash identifies a file by its SHA256 digest in 64 hex characters.
type FileHash string

func (h FileHash) fileParams() (url.Values, error) {
	if !isSHA256Hex(string(h)) {
		return nil, &UsageError{Message: fmt.Sprintf("invalid SHA256 hex digest: %q", string(h))}
	}
	params := url.Values{}
	params.Set("hash", string(h))
	return params, nil
}

// FileID identifies a file by the numeric id the service assigned to it.
type FileID uint64

func (id FileID) fileParams() (url.Values, error) {
	params := url.Values{}
	params.Set("file_id", strconv.FormatUint(uint64(id), 10))
	return params, nil
}

// FileSelection selects a set of files, all by hash or all by id.
type FileSelection interface {
	selectionParams() (url.Values, error)
}

// ByHashes selects files by SHA256 hex digests.
type ByHashes []string

func (h ByHashes) selectionParams() (url.Values, error) {
	if len(h) == 0 {
		return nil, &UsageError{Message: "hashes (exclusive) or file_ids required"}
	}
	for _, digest := range h {
		if !isSHA256Hex(digest) {
			return nil, &UsageError{Message: fmt.Sprintf("invalid SHA256 hex digest: %q", digest)}
		}
	}
	params := url.Values{}
	params.Set("hashes", jsonParam([]string(h)))
	return params, nil
}

// ByFileIDs selects files by numeric ids.
type ByFileIDs []uint64

func (f ByFileIDs) selectionParams() (url.Values, error) {
	if len(f) == 0 {
		return nil, &UsageError{Message: "hashes (exclusive) or file_ids required"}
	}
	params := url.Values{}
	params.Set("file_ids", jsonParam([]uint64(f)))
	return params, nil
}

func isSHA256Hex(digest string) bool {
	if len(digest) != 64 {
		return false
	}
	_, err := hex.DecodeString(digest)
	return err == nil
}

// AddFileResult is the service's verdict on one import attempt.
type AddFileResult struct {
	Status ImportStatus
	Hash   string
	Note   string
}

// AddFile asks the service to import the file at path. The path has to be
// readable by the service process itself; use AddFileData to upload bytes
// the service cannot reach.
func (c *Client) AddFile(path string) (*AddFileResult, error) {
	if path == "" {
		return nil, &UsageError{Message: "file path required"}
	}
	response, err := c.postJSON(AddFileApi, map[string]interface{}{"path": path})
	if err != nil {
		return nil, err
	}
	return parseAddFileResponse(response)
}

// AddFileData uploads raw file bytes for import.
func (c *Client) AddFileData(r io.Reader) (*AddFileResult, error) {
	if r == nil {
		return nil, &UsageError{Message: "file data required"}
	}
	response, err := c.callEndpoint(http.MethodPost, AddFileApi, nil, r, ContentTypeOctetStream)
	if err != nil {
		return nil, err
	}
	return parseAddFileResponse(response)
}

func parseAddFileResponse(response *Response) (*AddFileResult, error) {
	var data struct {
		Status int    `json:"status"`
		Hash   string `json:"hash"`
		Note   string `json:"note"`
	}
	if err := json.Unmarshal(response.Body, &data); err != nil {
		return nil, err
	}
	status, err := ImportStatusFromInt(data.Status)
	if err != nil {
		return nil, err
	}
	return &AddFileResult{Status: status, Hash: data.Hash, Note: data.Note}, nil
}

// SearchFiles runs a tag search and returns the matching file ids. The ids
// come back exactly as the service lists them.
func (c *Client) SearchFiles(tags []string, inbox bool, archive bool) ([]uint64, error) {
	params := url.Values{}
	params.Set("tags", jsonParam(tags))
	params.Set("system_inbox", jsonParam(inbox))
	params.Set("system_archive", jsonParam(archive))
	response, err := c.get(SearchFilesApi, params)
	if err != nil {
		return nil, err
	}
	var data struct {
		FileIDs []uint64 `json:"file_ids"`
	}
	if err := json.Unmarshal(response.Body, &data); err != nil {
		return nil, err
	}
	return data.FileIDs, nil
}

// FileMetadata is one record from the file_metadata endpoint. ServiceTags
// is re-keyed from the service's string status codes to typed statuses,
// per tag service.
type FileMetadata struct {
	FileID      uint64
	Hash        string
	Size        int64
	MIME        string
	Width       int
	Height      int
	Duration    float64
	NumFrames   int
	NumWords    int
	KnownURLs   []string
	ServiceTags map[string]map[TagStatus][]string
}

type rawFileMetadata struct {
	FileID      uint64                         `json:"file_id"`
	Hash        string                         `json:"hash"`
	Size        int64                          `json:"size"`
	MIME        string                         `json:"mime"`
	Width       int                            `json:"width"`
	Height      int                            `json:"height"`
	Duration    float64                        `json:"duration"`
	NumFrames   int                            `json:"num_frames"`
	NumWords    int                            `json:"num_words"`
	KnownURLs   []string                       `json:"known_urls"`
	ServiceTags map[string]map[string][]string `json:"service_names_to_statuses_to_tags"`
}

// GetFileMetadata fetches metadata for the selected files.
func (c *Client) GetFileMetadata(files FileSelection) ([]FileMetadata, error) {
	if files == nil {
		return nil, &UsageError{Message: "hashes (exclusive) or file_ids required"}
	}
	params, err := files.selectionParams()
	if err != nil {
		return nil, err
	}
	response, err := c.get(FileMetadataApi, params)
	if err != nil {
		return nil, err
	}
	var data struct {
		Metadata []rawFileMetadata `json:"metadata"`
	}
	if err := json.Unmarshal(response.Body, &data); err != nil {
		return nil, err
	}
	result := make([]FileMetadata, 0, len(data.Metadata))
	for _, datum := range data.Metadata {
		metadata := FileMetadata{
			FileID:    datum.FileID,
			Hash:      datum.Hash,
			Size:      datum.Size,
			MIME:      datum.MIME,
			Width:     datum.Width,
			Height:    datum.Height,
			Duration:  datum.Duration,
			NumFrames: datum.NumFrames,
			NumWords:  datum.NumWords,
			KnownURLs: datum.KnownURLs,
		}
		if datum.ServiceTags != nil {
			metadata.ServiceTags = make(map[string]map[TagStatus][]string, len(datum.ServiceTags))
			// Different services may report different status subsets, so
			// each inner map is re-keyed on its own.
			for service, statusToTags := range datum.ServiceTags {
				translated := make(map[TagStatus][]string, len(statusToTags))
				for status, tags := range statusToTags {
					typed, err := TagStatusFromString(status)
					if err != nil {
						return nil, err
					}
					translated[typed] = tags
				}
				metadata.ServiceTags[service] = translated
			}
		}
		result = append(result, metadata)
	}
	return result, nil
}

// FileIdentifier pairs a file id with its hash.
type FileIdentifier struct {
	FileID uint64 `json:"file_id"`
	Hash   string `json:"hash"`
}

// GetFileIdentifiers fetches only the id/hash pairs of the selected files,
// the only_return_identifiers mode of the file_metadata endpoint.
func (c *Client) GetFileIdentifiers(files FileSelection) ([]FileIdentifier, error) {
	if files == nil {
		return nil, &UsageError{Message: "hashes (exclusive) or file_ids required"}
	}
	params, err := files.selectionParams()
	if err != nil {
		return nil, err
	}
	params.Set("only_return_identifiers", jsonParam(true))
	response, err := c.get(FileMetadataApi, params)
	if err != nil {
		return nil, err
	}
	var data struct {
		Metadata []FileIdentifier `json:"metadata"`
	}
	if err := json.Unmarshal(response.Body, &data); err != nil {
		return nil, err
	}
	return data.Metadata, nil
}

// GetFile returns the raw bytes of one file. No JSON parsing happens here.
func (c *Client) GetFile(id FileIdentity) ([]byte, error) {
	return c.getContent(FileApi, id)
}

// GetThumbnail returns the raw bytes of one file's thumbnail.
func (c *Client) GetThumbnail(id FileIdentity) ([]byte, error) {
	return c.getContent(ThumbnailApi, id)
}

func (c *Client) getContent(endpoint string, id FileIdentity) ([]byte, error) {
	if id == nil {
		return nil, &UsageError{Message: "hash (exclusive) or file_id required"}
	}
	params, err := id.fileParams()
	if err != nil {
		return nil, err
	}
	response, err := c.get(endpoint, params)
	if err != nil {
		return nil, err
	}
	return response.Body, nil
}
