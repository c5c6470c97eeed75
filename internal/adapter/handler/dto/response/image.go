package response

import (
	"github.com/blacha370/Image-Service/internal/domain/entity"
	"github.com/blacha370/Image-Service/internal/usecase/image"
	"github.com/blacha370/Image-Service/internal/usecase/upload"
)

type ThumbnailResponse struct {
	Name string `json:"name"`
	Size string `json:"size"`
	URL  string `json:"url"`
}

type ImageResponse struct {
	Name       string              `json:"name"`
	Details    string              `json:"details,omitempty"`
	URL        string              `json:"url,omitempty"`
	Thumbnails []ThumbnailResponse `json:"thumbnails,omitempty"`
}

func ThumbnailFromEntity(t *entity.Thumbnail) ThumbnailResponse {
	size := entity.ThumbnailSize{ID: t.SizeID, Height: t.Height}
	return ThumbnailResponse{
		Name: t.Name,
		Size: size.Label(),
		URL:  t.URL,
	}
}

func ImageFromEntity(img *entity.Image, detailsURL string) ImageResponse {
	return ImageResponse{
		Name:    img.Name,
		Details: detailsURL,
		URL:     img.URL,
	}
}

func ImagesFromEntities(images []entity.Image, detailsBase string) []ImageResponse {
	result := make([]ImageResponse, 0, len(images))
	for i := range images {
		result = append(result, ImageFromEntity(&images[i], detailsBase+images[i].Name))
	}
	return result
}

func DetailFromUsecase(d *image.Detail) ImageResponse {
	resp := ImageResponse{
		Name:       d.Image.Name,
		URL:        d.Image.URL,
		Thumbnails: make([]ThumbnailResponse, 0, len(d.Thumbnails)),
	}
	for i := range d.Thumbnails {
		resp.Thumbnails = append(resp.Thumbnails, ThumbnailFromEntity(&d.Thumbnails[i]))
	}
	return resp
}

func DetailsFromUsecase(details []image.Detail) []ImageResponse {
	result := make([]ImageResponse, 0, len(details))
	for i := range details {
		result = append(result, DetailFromUsecase(&details[i]))
	}
	return result
}

func UploadResultToResponse(result *upload.UploadResult) ImageResponse {
	resp := ImageResponse{
		Name:       result.Image.Name,
		URL:        result.Image.URL,
		Thumbnails: make([]ThumbnailResponse, 0, len(result.Thumbnails)),
	}
	for i := range result.Thumbnails {
		resp.Thumbnails = append(resp.Thumbnails, ThumbnailFromEntity(&result.Thumbnails[i]))
	}
	return resp
}
