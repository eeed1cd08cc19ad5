package config

// Config holds the core SDK settings shared by every subsystem.
type Config struct {
	// AppID identifies the application on the backend and namespaces
	// everything the SDK persists on the device.
	AppID string `env:"CLOUDKIT_APP_ID,required" yaml:"app_id"`

	// APIBaseURL is the root endpoint of the backend API.
	APIBaseURL string `env:"CLOUDKIT_API_URL" envDefault:"https://api.cloudkit.dev" yaml:"api_url"`
}

// AuthLabel derives the storage label that isolates this application's
// session data from other apps sharing the same device storage.
func (c Config) AuthLabel() string {
	return "auth_" + c.AppID
}

// UserLabel derives the storage label for the persisted user record.
func (c Config) UserLabel() string {
	return "user_" + c.AppID
}
