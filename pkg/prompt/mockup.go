package prompt

import (
	"fmt"
	"strings"

	"github.com/shouni/gemini-ad-kit/pkg/domain"
)

// Mockup はモックアップ生成用に組み立てた指示文と添付画像です。
// Images は常に商品画像が先頭で、カスタム背景があれば 2 番目に続きます。
type Mockup struct {
	Images []domain.ImageAsset
	Text   string
}

// BuildMockup は GenerationRequest を自然言語の指示文と添付画像列に変換します。
// 同じ入力からは常に同じ出力になります。
func BuildMockup(req domain.GenerationRequest) Mockup {
	channel := channelOrDefault(req.ChannelName)
	images := []domain.ImageAsset{req.ProductImage}

	lines := []string{
		fmt.Sprintf("Create a photorealistic social media advertisement mockup for %s.", channel),
		"The first image is the product photo. Keep the product exactly as it appears, including its shape, colors, labels and logo, " +
			"and integrate it realistically into the composition. Do not redraw or reinvent the product from scratch.",
	}

	if req.Background.IsCustom() && req.Background.Custom != nil {
		images = append(images, *req.Background.Custom)
		lines = append(lines,
			"The second image is the background. Place the product onto this exact background, matching its lighting, "+
				"shadows and perspective. Do not treat the background as loose inspiration and do not replace it with a different scene.")
	} else {
		lines = append(lines,
			fmt.Sprintf("Set the product in a %s scene, with lighting, shadows and perspective that fit the setting naturally.", req.Background.Scene))
	}

	if ratio := strings.TrimSpace(req.AspectRatio); ratio != "" {
		lines = append(lines, fmt.Sprintf("Frame the composition for a %s aspect ratio.", ratio))
	}

	if strings.TrimSpace(req.AdText) != "" {
		lines = append(lines,
			fmt.Sprintf("Render the text \"%s\" clearly and legibly within the composition, using typography styled for a %s ad.", req.AdText, channel))
	}

	lines = append(lines, "Return the finished mockup as an image.")

	// 呼び出し元の指示は最後に置き、上の汎用指示より優先させる
	if strings.TrimSpace(req.PlacementInstructions) != "" {
		lines = append(lines,
			"Additional styling and placement instructions, which take priority over the guidance above: "+req.PlacementInstructions)
	}

	return Mockup{
		Images: images,
		Text:   strings.Join(lines, "\n"),
	}
}

func channelOrDefault(name string) string {
	if strings.TrimSpace(name) == "" {
		return "social media"
	}
	return name
}
