package response

type UploadResponse struct {
	Key string `json:"key"`
	URL string `json:"url"`
}
