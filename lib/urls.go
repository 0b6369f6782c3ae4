package lib

import (
	"encoding/json"
	"net/url"
)

// URLFileStatus is the import state of one file the service already knows
// for a URL.
type URLFileStatus struct {
	Status ImportStatus
	Hash   string
	Note   string
}

// URLFiles is the service's record of files associated with a URL.
type URLFiles struct {
	NormalisedURL   string
	URLFileStatuses []URLFileStatus
}

// GetURLFiles asks the service which files it already has for a URL.
func (c *Client) GetURLFiles(target string) (*URLFiles, error) {
	params := url.Values{}
	params.Set("url", target)
	response, err := c.get(GetURLFilesApi, params)
	if err != nil {
		return nil, err
	}
	var data struct {
		NormalisedURL   string `json:"normalised_url"`
		URLFileStatuses []struct {
			Status int    `json:"status"`
			Hash   string `json:"hash"`
			Note   string `json:"note"`
		} `json:"url_file_statuses"`
	}
	if err := json.Unmarshal(response.Body, &data); err != nil {
		return nil, err
	}
	result := &URLFiles{NormalisedURL: data.NormalisedURL}
	for _, fileStatus := range data.URLFileStatuses {
		status, err := ImportStatusFromInt(fileStatus.Status)
		if err != nil {
			return nil, err
		}
		result.URLFileStatuses = append(result.URLFileStatuses, URLFileStatus{
			Status: status,
			Hash:   fileStatus.Hash,
			Note:   fileStatus.Note,
		})
	}
	return result, nil
}

// URLInfo is the service's classification of a URL.
type URLInfo struct {
	URLType       URLType
	MatchName     string
	NormalisedURL string
	CanParse      bool
}

// GetURLInfo asks the service what it makes of a URL.
func (c *Client) GetURLInfo(target string) (*URLInfo, error) {
	params := url.Values{}
	params.Set("url", target)
	response, err := c.get(GetURLInfoApi, params)
	if err != nil {
		return nil, err
	}
	var data struct {
		URLType       int    `json:"url_type"`
		MatchName     string `json:"match_name"`
		NormalisedURL string `json:"normalised_url"`
		CanParse      bool   `json:"can_parse"`
	}
	if err := json.Unmarshal(response.Body, &data); err != nil {
		return nil, err
	}
	urlType, err := URLTypeFromInt(data.URLType)
	if err != nil {
		return nil, err
	}
	return &URLInfo{
		URLType:       urlType,
		MatchName:     data.MatchName,
		NormalisedURL: data.NormalisedURL,
		CanParse:      data.CanParse,
	}, nil
}

// AddURLResult reports what the service did with a submitted URL.
type AddURLResult struct {
	HumanResultText string `json:"human_result_text"`
	NormalisedURL   string `json:"normalised_url"`
}

// AddURL tells the service to import a URL, the same routine as dropping a
// text URL onto the main client window. pageName optionally routes the
// import to a named page; servicesToTags optionally tags whatever files the
// URL produces.
func (c *Client) AddURL(target string, pageName string, servicesToTags map[string][]string) (*AddURLResult, error) {
	payload := map[string]interface{}{"url": target}
	if pageName != "" {
		payload["destination_page_name"] = pageName
	}
	if len(servicesToTags) > 0 {
		payload["service_names_to_tags"] = servicesToTags
	}
	response, err := c.postJSON(AddURLApi, payload)
	if err != nil {
		return nil, err
	}
	result := &AddURLResult{}
	if err := json.Unmarshal(response.Body, result); err != nil {
		return nil, err
	}
	return result, nil
}

// AssociateURLs adds and removes URL associations on the files given by
// hash. Either list may be empty.
func (c *Client) AssociateURLs(hashes []string, add []string, remove []string) error {
	payload := map[string]interface{}{"hashes": hashes}
	if len(add) > 0 {
		payload["urls_to_add"] = add
	}
	if len(remove) > 0 {
		payload["urls_to_delete"] = remove
	}
	_, err := c.postJSON(AssociateURLApi, payload)
	return err
}
