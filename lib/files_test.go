package lib

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

const testDigest = "2a0a2e9e3a004ba7398a840ba1a1c8108aa6d1ed9d0e0a2cbe1a086ac8a4ba0b"

func TestSearchFilesRoundTrip(t *testing.T) {
	c, _ := newTestClient(t, map[string]http.HandlerFunc{
		SearchFilesApi: func(w http.ResponseWriter, r *http.Request) {
			query := r.URL.Query()
			require.Equal(t, `["character:x"]`, query.Get("tags"))
			require.Equal(t, "false", query.Get("system_inbox"))
			require.Equal(t, "false", query.Get("system_archive"))
			fmt.Fprint(w, `{"file_ids": [1, 2, 3]}`)
		},
	})
	fileIDs, err := c.SearchFiles([]string{"character:x"}, false, false)
	require.NoError(t, err)
	require.Equal(t, []uint64{1, 2, 3}, fileIDs)
}

func TestSearchFilesInboxArchiveFlags(t *testing.T) {
	c, _ := newTestClient(t, map[string]http.HandlerFunc{
		SearchFilesApi: func(w http.ResponseWriter, r *http.Request) {
			query := r.URL.Query()
			require.Equal(t, "true", query.Get("system_inbox"))
			require.Equal(t, "true", query.Get("system_archive"))
			fmt.Fprint(w, `{"file_ids": []}`)
		},
	})
	_, err := c.SearchFiles(nil, true, true)
	require.NoError(t, err)
}

func TestGetFileMetadataTagTranslation(t *testing.T) {
	c, _ := newTestClient(t, map[string]http.HandlerFunc{
		FileMetadataApi: func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, fmt.Sprintf(`[%q]`, testDigest), r.URL.Query().Get("hashes"))
			fmt.Fprintf(w, `{"metadata": [{
				"file_id": 7,
				"hash": %q,
				"size": 1024,
				"mime": "image/png",
				"width": 100,
				"height": 200,
				"known_urls": ["https://example.com/post/1"],
				"service_names_to_statuses_to_tags": {
					"my tags": {"0": ["a"]},
					"repo": {"1": ["b"], "2": ["c", "d"]}
				}
			}]}`, testDigest)
		},
	})
	records, err := c.GetFileMetadata(ByHashes{testDigest})
	require.NoError(t, err)
	require.Len(t, records, 1)
	record := records[0]
	require.Equal(t, uint64(7), record.FileID)
	require.Equal(t, testDigest, record.Hash)
	require.Equal(t, "image/png", record.MIME)
	// Statuses are re-keyed per service: each service keeps its own subset.
	require.Equal(t, map[TagStatus][]string{TagStatusCurrent: {"a"}}, record.ServiceTags["my tags"])
	require.Equal(t, map[TagStatus][]string{
		TagStatusPending: {"b"},
		TagStatusDeleted: {"c", "d"},
	}, record.ServiceTags["repo"])
}

func TestGetFileMetadataUnknownStatus(t *testing.T) {
	c, _ := newTestClient(t, map[string]http.HandlerFunc{
		FileMetadataApi: func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"metadata": [{"file_id": 1, "service_names_to_statuses_to_tags": {"my tags": {"9": ["a"]}}}]}`)
		},
	})
	_, err := c.GetFileMetadata(ByFileIDs{1})
	var format *DataFormatError
	require.ErrorAs(t, err, &format)
}

func TestGetFileIdentifiers(t *testing.T) {
	c, _ := newTestClient(t, map[string]http.HandlerFunc{
		FileMetadataApi: func(w http.ResponseWriter, r *http.Request) {
			query := r.URL.Query()
			require.Equal(t, `[4,5]`, query.Get("file_ids"))
			require.Equal(t, "true", query.Get("only_return_identifiers"))
			fmt.Fprintf(w, `{"metadata": [{"file_id": 4, "hash": %q}]}`, testDigest)
		},
	})
	identifiers, err := c.GetFileIdentifiers(ByFileIDs{4, 5})
	require.NoError(t, err)
	require.Equal(t, []FileIdentifier{{FileID: 4, Hash: testDigest}}, identifiers)
}

func TestFileSelectionRequiredBeforeAnyCall(t *testing.T) {
	c, calls := newTestClient(t, nil)
	var usage *UsageError

	_, err := c.GetFileMetadata(nil)
	require.ErrorAs(t, err, &usage)
	_, err = c.GetFileIdentifiers(nil)
	require.ErrorAs(t, err, &usage)
	_, err = c.GetFile(nil)
	require.ErrorAs(t, err, &usage)
	_, err = c.GetThumbnail(nil)
	require.ErrorAs(t, err, &usage)
	_, err = c.GetFileMetadata(ByHashes{})
	require.ErrorAs(t, err, &usage)
	_, err = c.GetFileIdentifiers(ByFileIDs{})
	require.ErrorAs(t, err, &usage)

	require.Equal(t, 0, *calls)
}

func TestInvalidDigestRefusedBeforeAnyCall(t *testing.T) {
	c, calls := newTestClient(t, nil)
	var usage *UsageError

	_, err := c.GetFile(FileHash("zz"))
	require.ErrorAs(t, err, &usage)
	_, err = c.GetFileMetadata(ByHashes{"not hex at all"})
	require.ErrorAs(t, err, &usage)

	require.Equal(t, 0, *calls)
}

func TestAddFileSendsPathAsJSON(t *testing.T) {
	c, _ := newTestClient(t, map[string]http.HandlerFunc{
		AddFileApi: func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, ContentTypeJson, r.Header.Get("Content-Type"))
			body, err := io.ReadAll(r.Body)
			require.NoError(t, err)
			var payload map[string]string
			require.NoError(t, json.Unmarshal(body, &payload))
			require.Equal(t, map[string]string{"path": "/tmp/x.png"}, payload)
			fmt.Fprintf(w, `{"status": 1, "hash": %q, "note": ""}`, testDigest)
		},
	})
	result, err := c.AddFile("/tmp/x.png")
	require.NoError(t, err)
	require.Equal(t, ImportStatusSuccess, result.Status)
	require.Equal(t, testDigest, result.Hash)
}

func TestAddFileDataSendsRawBytes(t *testing.T) {
	raw := []byte{0x89, 'P', 'N', 'G', 0x00}
	c, _ := newTestClient(t, map[string]http.HandlerFunc{
		AddFileApi: func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, ContentTypeOctetStream, r.Header.Get("Content-Type"))
			body, err := io.ReadAll(r.Body)
			require.NoError(t, err)
			require.Equal(t, raw, body)
			fmt.Fprintf(w, `{"status": 2, "hash": %q, "note": "already in db"}`, testDigest)
		},
	})
	result, err := c.AddFileData(bytes.NewReader(raw))
	require.NoError(t, err)
	require.Equal(t, ImportStatusExists, result.Status)
	require.Equal(t, "already in db", result.Note)
}

func TestAddFileUsageErrors(t *testing.T) {
	c, calls := newTestClient(t, nil)
	var usage *UsageError

	_, err := c.AddFile("")
	require.ErrorAs(t, err, &usage)
	_, err = c.AddFileData(nil)
	require.ErrorAs(t, err, &usage)

	require.Equal(t, 0, *calls)
}

func TestAddFileUnknownStatus(t *testing.T) {
	c, _ := newTestClient(t, map[string]http.HandlerFunc{
		AddFileApi: func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"status": 6, "hash": "", "note": ""}`)
		},
	})
	_, err := c.AddFile("/tmp/x.png")
	var format *DataFormatError
	require.ErrorAs(t, err, &format)
}

func TestGetFileReturnsRawBytes(t *testing.T) {
	// Deliberately not valid JSON; binary payloads pass through unparsed.
	raw := []byte{0xff, 0xd8, 0xff, 0x00, '{'}
	c, _ := newTestClient(t, map[string]http.HandlerFunc{
		FileApi: func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "7", r.URL.Query().Get("file_id"))
			w.Write(raw)
		},
	})
	data, err := c.GetFile(FileID(7))
	require.NoError(t, err)
	require.Equal(t, raw, data)
}

func TestGetThumbnailByHash(t *testing.T) {
	raw := []byte("thumbnail bytes")
	c, _ := newTestClient(t, map[string]http.HandlerFunc{
		ThumbnailApi: func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, testDigest, r.URL.Query().Get("hash"))
			w.Write(raw)
		},
	})
	data, err := c.GetThumbnail(FileHash(testDigest))
	require.NoError(t, err)
	require.Equal(t, raw, data)
}
