package lib

import (
	"encoding/json"
	"net/url"
)

// CleanTags returns the tags as the service would see them after its own
// normalisation.
func (c *Client) CleanTags(tags []string) ([]string, error) {
	params := url.Values{}
	params.Set("tags", jsonParam(tags))
	response, err := c.get(CleanTagsApi, params)
	if err != nil {
		return nil, err
	}
	var data struct {
		Tags []string `json:"tags"`
	}
	if err := json.Unmarshal(response.Body, &data); err != nil {
		return nil, err
	}
	return data.Tags, nil
}

// TagServices lists the tag services the client is configured with.
type TagServices struct {
	LocalTags       []string `json:"local_tags"`
	TagRepositories []string `json:"tag_repositories"`
}

// GetTagServices asks the service about its tag services.
func (c *Client) GetTagServices() (*TagServices, error) {
	response, err := c.get(GetTagServicesApi, nil)
	if err != nil {
		return nil, err
	}
	services := &TagServices{}
	if err := json.Unmarshal(response.Body, services); err != nil {
		return nil, err
	}
	return services, nil
}

// AddTags makes tag changes on the files given by hash. servicesToTags adds
// tags per service; servicesToActions runs explicit actions per service.
// Either map may be nil. Integer-keyed maps marshal their keys as decimal
// strings, which is exactly the wire form the service expects.
func (c *Client) AddTags(hashes []string, servicesToTags map[string][]string, servicesToActions map[string]map[TagAction][]string) error {
	payload := map[string]interface{}{"hashes": hashes}
	if len(servicesToTags) > 0 {
		payload["service_names_to_tags"] = servicesToTags
	}
	if len(servicesToActions) > 0 {
		payload["service_names_to_actions_to_tags"] = servicesToActions
	}
	_, err := c.postJSON(AddTagsApi, payload)
	return err
}
