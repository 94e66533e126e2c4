// Package magento implements the REST and GraphQL client used by every
// commerce action. A Client is built per invocation from the action's
// argument bag and is discarded when the action returns.
package magento

import (
	"fmt"
	"strings"

	"github.com/mitchellh/mapstructure"
)

// Default values applied when the argument bag leaves them empty.
const (
	DefaultSchema                  = "http"
	DefaultAPIVersion              = "V1"
	DefaultCustomerTokenExpiration = 3600
)

// Settings is the backend configuration carried in every argument bag.
type Settings struct {
	Host                    string            `mapstructure:"MAGENTO_HOST"`
	Schema                  string            `mapstructure:"MAGENTO_SCHEMA"`
	APIVersion              string            `mapstructure:"MAGENTO_API_VERSION"`
	MediaPath               string            `mapstructure:"MAGENTO_MEDIA_PATH"`
	IntegrationToken        string            `mapstructure:"MAGENTO_INTEGRATION_TOKEN"`
	AdminToken              string            `mapstructure:"MAGENTO_AUTH_ADMIN_TOKEN"`
	CustomerTokenExpiration int               `mapstructure:"MAGENTO_CUSTOMER_TOKEN_EXPIRATION_TIME"`
	Debug                   bool              `mapstructure:"DEBUG"`
	Headers                 map[string]string `mapstructure:"__ow_headers"`
}

// SettingsFromArgs decodes the backend settings from an argument bag.
// String values are accepted for numeric and boolean keys.
func SettingsFromArgs(args map[string]interface{}) (Settings, error) {
	var s Settings
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           &s,
	})
	if err != nil {
		return s, err
	}
	if err := decoder.Decode(args); err != nil {
		return s, fmt.Errorf("failed to decode magento settings: %w", err)
	}
	s.applyDefaults()
	return s, nil
}

func (s *Settings) applyDefaults() {
	if s.Schema == "" {
		s.Schema = DefaultSchema
	}
	if s.APIVersion == "" {
		s.APIVersion = DefaultAPIVersion
	}
	if s.CustomerTokenExpiration <= 0 {
		s.CustomerTokenExpiration = DefaultCustomerTokenExpiration
	}
}

// BaseURL returns {schema}://{host}.
func (s Settings) BaseURL() string {
	return fmt.Sprintf("%s://%s", s.Schema, s.Host)
}

// RESTBaseURL returns the root of the versioned REST API.
func (s Settings) RESTBaseURL() string {
	return fmt.Sprintf("%s/rest/%s", s.BaseURL(), s.APIVersion)
}

// MediaBaseURL returns the root under which product images are served.
func (s Settings) MediaBaseURL() string {
	return fmt.Sprintf("%s/%s", s.BaseURL(), strings.Trim(s.MediaPath, "/"))
}

// GraphQLURL returns the GraphQL endpoint.
func (s Settings) GraphQLURL() string {
	return s.BaseURL() + "/graphql"
}

// ServiceToken returns the integration token, or the admin token when no
// integration token is configured.
func (s Settings) ServiceToken() string {
	if s.IntegrationToken != "" {
		return s.IntegrationToken
	}
	return s.AdminToken
}
