package lib

import (
	"encoding/json"
	"net/url"
)

// APIVersion returns the API version the service reports.
func (c *Client) APIVersion() (int, error) {
	response, err := c.get(APIVersionApi, nil)
	if err != nil {
		return 0, err
	}
	var data struct {
		Version int `json:"version"`
	}
	if err := json.Unmarshal(response.Body, &data); err != nil {
		return 0, err
	}
	return data.Version, nil
}

// RequestNewPermissions registers external access under the given name and
// returns the granted access key. The service operator has to have the
// "add from api request" dialog open under services->review services,
// otherwise the call fails with insufficient access.
func (c *Client) RequestNewPermissions(name string, permissions []Permission) (string, error) {
	params := url.Values{}
	params.Set("name", name)
	params.Set("basic_permissions", jsonParam(permissions))
	response, err := c.get(RequestNewPermissionsApi, params)
	if err != nil {
		return "", err
	}
	var data struct {
		AccessKey string `json:"access_key"`
	}
	if err := json.Unmarshal(response.Body, &data); err != nil {
		return "", err
	}
	return data.AccessKey, nil
}

// AccessKeyInfo describes the access key a client is configured with.
type AccessKeyInfo struct {
	BasicPermissions []Permission
	HumanDescription string
}

// VerifyAccessKey checks the configured access key and reports the
// permissions granted to it.
func (c *Client) VerifyAccessKey() (*AccessKeyInfo, error) {
	response, err := c.get(VerifyAccessKeyApi, nil)
	if err != nil {
		return nil, err
	}
	var data struct {
		BasicPermissions []int  `json:"basic_permissions"`
		HumanDescription string `json:"human_description"`
	}
	if err := json.Unmarshal(response.Body, &data); err != nil {
		return nil, err
	}
	info := &AccessKeyInfo{HumanDescription: data.HumanDescription}
	for _, value := range data.BasicPermissions {
		permission, err := PermissionFromInt(value)
		if err != nil {
			return nil, err
		}
		info.BasicPermissions = append(info.BasicPermissions, permission)
	}
	return info, nil
}
