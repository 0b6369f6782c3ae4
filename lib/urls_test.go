package lib

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetURLInfo(t *testing.T) {
	c, _ := newTestClient(t, map[string]http.HandlerFunc{
		GetURLInfoApi: func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "https://example.com/post/1", r.URL.Query().Get("url"))
			fmt.Fprint(w, `{
				"url_type": 0,
				"match_name": "example post page",
				"normalised_url": "https://example.com/post/1",
				"can_parse": true
			}`)
		},
	})
	info, err := c.GetURLInfo("https://example.com/post/1")
	require.NoError(t, err)
	require.Equal(t, URLTypePost, info.URLType)
	require.Equal(t, "example post page", info.MatchName)
	require.True(t, info.CanParse)
}

func TestGetURLInfoUnassignedValue(t *testing.T) {
	// 1 sits inside the numeric range but is not an assigned URL type.
	c, _ := newTestClient(t, map[string]http.HandlerFunc{
		GetURLInfoApi: func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"url_type": 1}`)
		},
	})
	_, err := c.GetURLInfo("https://example.com")
	var format *DataFormatError
	require.ErrorAs(t, err, &format)
}

func TestGetURLFiles(t *testing.T) {
	c, _ := newTestClient(t, map[string]http.HandlerFunc{
		GetURLFilesApi: func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprintf(w, `{
				"normalised_url": "https://example.com/post/1",
				"url_file_statuses": [
					{"status": 2, "hash": %q, "note": "already in db"},
					{"status": 0, "hash": "", "note": ""}
				]
			}`, testDigest)
		},
	})
	files, err := c.GetURLFiles("https://example.com/post/1")
	require.NoError(t, err)
	require.Equal(t, "https://example.com/post/1", files.NormalisedURL)
	require.Equal(t, []URLFileStatus{
		{Status: ImportStatusExists, Hash: testDigest, Note: "already in db"},
		{Status: ImportStatusImportable},
	}, files.URLFileStatuses)
}

func TestGetURLFilesUnknownStatus(t *testing.T) {
	c, _ := newTestClient(t, map[string]http.HandlerFunc{
		GetURLFilesApi: func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"url_file_statuses": [{"status": 5}]}`)
		},
	})
	_, err := c.GetURLFiles("https://example.com")
	var format *DataFormatError
	require.ErrorAs(t, err, &format)
}

func TestAddURLBody(t *testing.T) {
	var payload map[string]interface{}
	c, _ := newTestClient(t, map[string]http.HandlerFunc{
		AddURLApi: func(w http.ResponseWriter, r *http.Request) {
			body, err := io.ReadAll(r.Body)
			require.NoError(t, err)
			require.NoError(t, json.Unmarshal(body, &payload))
			fmt.Fprint(w, `{"human_result_text": "url added", "normalised_url": "https://example.com/post/1"}`)
		},
	})
	result, err := c.AddURL("https://example.com/post/1", "import page", map[string][]string{"my tags": {"a"}})
	require.NoError(t, err)
	require.Equal(t, "url added", result.HumanResultText)
	require.Equal(t, "import page", payload["destination_page_name"])
	require.Equal(t, map[string]interface{}{"my tags": []interface{}{"a"}}, payload["service_names_to_tags"])
}

func TestAddURLOmitsOptionalFields(t *testing.T) {
	var payload map[string]interface{}
	c, _ := newTestClient(t, map[string]http.HandlerFunc{
		AddURLApi: func(w http.ResponseWriter, r *http.Request) {
			body, err := io.ReadAll(r.Body)
			require.NoError(t, err)
			require.NoError(t, json.Unmarshal(body, &payload))
			fmt.Fprint(w, `{"human_result_text": "", "normalised_url": ""}`)
		},
	})
	_, err := c.AddURL("https://example.com", "", nil)
	require.NoError(t, err)
	require.Equal(t, "https://example.com", payload["url"])
	require.NotContains(t, payload, "destination_page_name")
	require.NotContains(t, payload, "service_names_to_tags")
}

func TestAssociateURLsBody(t *testing.T) {
	var payload map[string]interface{}
	c, _ := newTestClient(t, map[string]http.HandlerFunc{
		AssociateURLApi: func(w http.ResponseWriter, r *http.Request) {
			body, err := io.ReadAll(r.Body)
			require.NoError(t, err)
			require.NoError(t, json.Unmarshal(body, &payload))
		},
	})
	err := c.AssociateURLs([]string{testDigest}, []string{"https://example.com/a"}, []string{"https://example.com/b"})
	require.NoError(t, err)
	require.Equal(t, []interface{}{testDigest}, payload["hashes"])
	require.Equal(t, []interface{}{"https://example.com/a"}, payload["urls_to_add"])
	require.Equal(t, []interface{}{"https://example.com/b"}, payload["urls_to_delete"])
}
