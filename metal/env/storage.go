package env

// StorageEnvironment points at the hosted object store used for blog images.
// Endpoint is the storage service root, e.g. https://<project>.storage.host/storage/v1.
type StorageEnvironment struct {
	Endpoint string `validate:"required,url"`
	Bucket   string `validate:"required,min=1"`
	APIKey   string `validate:"required,min=16"`
}
