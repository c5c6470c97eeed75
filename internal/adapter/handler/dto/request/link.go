package request

type GenerateLinkRequest struct {
	ImageName string `json:"image_name" binding:"required"`
	Seconds   int    `json:"seconds" binding:"required"`
}
