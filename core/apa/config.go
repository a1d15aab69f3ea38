package apa

// Config holds configuration for the league GraphQL API.
type Config struct {
	// Endpoint is the GraphQL URL.
	Endpoint string `mapstructure:"endpoint" default:"https://gql.poolplayers.com/graphql"`
	// Origin is sent as the origin header; the referer is Origin plus a trailing slash.
	Origin string `mapstructure:"origin" default:"https://league.poolplayers.com"`
	// ClientName identifies the caller to the Apollo gateway.
	ClientName string `mapstructure:"client_name" default:"MemberServices"`
	// ClientVersion is the Apollo client version header.
	ClientVersion string `mapstructure:"client_version" default:"3.18.44-3550"`
	// UserAgent is the user-agent header.
	UserAgent string `mapstructure:"user_agent" default:"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"`
	// RefreshToken is exchanged for a short-lived access token.
	RefreshToken string `mapstructure:"refresh_token" default:""`
	// RequestsPerMinute caps outgoing requests. Zero or less disables the limit.
	RequestsPerMinute int `mapstructure:"requests_per_minute" default:"30"`
	// TimeoutSeconds bounds each HTTP request.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}
