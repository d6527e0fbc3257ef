package prompt

import (
	"strings"
	"testing"

	"github.com/shouni/gemini-ad-kit/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func asset(t *testing.T, mime, data string) domain.ImageAsset {
	t.Helper()
	a, err := domain.NewImageAsset(mime, []byte(data))
	require.NoError(t, err)
	return a
}

func TestBuildMockup(t *testing.T) {
	product := asset(t, domain.MimeTypePNG, "product")
	background := asset(t, domain.MimeTypeJPEG, "background")

	t.Run("シーン指定: シーン名を含み画像は商品のみ", func(t *testing.T) {
		for _, scene := range domain.Scenes {
			got := BuildMockup(domain.GenerationRequest{
				ProductImage: product,
				Background:   domain.SceneBackground(scene.Name),
				ChannelName:  "Instagram",
			})
			assert.Contains(t, got.Text, scene.Name)
			require.Len(t, got.Images, 1)
			assert.Equal(t, product, got.Images[0])
		}
	})

	t.Run("カスタム背景: 商品、背景の順に 2 枚", func(t *testing.T) {
		got := BuildMockup(domain.GenerationRequest{
			ProductImage: product,
			Background:   domain.CustomBackground(background),
			ChannelName:  "TikTok",
		})
		require.Len(t, got.Images, 2)
		assert.Equal(t, product, got.Images[0])
		assert.Equal(t, background, got.Images[1])
		assert.Contains(t, got.Text, "exact background")
	})

	t.Run("シーンモードではカスタム背景が残っていても添付しない", func(t *testing.T) {
		bg := domain.CustomBackground(background).WithMode(domain.BackgroundScene)
		bg.Scene = "Outdoor"
		got := BuildMockup(domain.GenerationRequest{ProductImage: product, Background: bg})
		assert.Len(t, got.Images, 1)
		assert.Contains(t, got.Text, "Outdoor")
	})

	t.Run("広告テキストは空でない時だけ含まれる", func(t *testing.T) {
		base := domain.GenerationRequest{ProductImage: product, Background: domain.SceneBackground("Minimal"), ChannelName: "Facebook"}

		withText := base
		withText.AdText = `50% OFF "today" only`
		got := BuildMockup(withText)
		assert.Contains(t, got.Text, withText.AdText)
		assert.Contains(t, got.Text, "styled for a Facebook ad")

		without := BuildMockup(base)
		assert.NotContains(t, without.Text, "Render the text")
	})

	t.Run("配置指示は最後に追加される", func(t *testing.T) {
		req := domain.GenerationRequest{
			ProductImage:          product,
			Background:            domain.SceneBackground("Seasonal"),
			AdText:                "New",
			PlacementInstructions: "put the product in the bottom-left corner",
		}
		got := BuildMockup(req)
		lines := strings.Split(got.Text, "\n")
		last := lines[len(lines)-1]
		assert.Contains(t, last, req.PlacementInstructions)
		assert.Contains(t, last, "priority")
	})

	t.Run("アスペクト比を指定するとフレーミング指示が入る", func(t *testing.T) {
		got := BuildMockup(domain.GenerationRequest{ProductImage: product, Background: domain.SceneBackground("Minimal"), AspectRatio: "9:16"})
		assert.Contains(t, got.Text, "9:16 aspect ratio")
	})

	t.Run("同じ入力なら同じ出力", func(t *testing.T) {
		req := domain.GenerationRequest{ProductImage: product, Background: domain.CustomBackground(background), AdText: "Hi"}
		assert.Equal(t, BuildMockup(req), BuildMockup(req))
	})
}

func TestBuildCopy(t *testing.T) {
	req := domain.CopyRequest{
		ChannelName:    "LinkedIn",
		ProductType:    "Handcrafted leather wallet",
		ProductDetails: "full-grain Italian leather",
		ToneName:       "Luxury",
	}

	t.Run("全ての入力をそのまま含む", func(t *testing.T) {
		got := BuildCopy(req, 3)
		for _, want := range []string{req.ChannelName, req.ProductType, req.ProductDetails, req.ToneName} {
			assert.Contains(t, got, want)
		}
		assert.Contains(t, got, "JSON array of exactly 3 strings")
		assert.Contains(t, got, "Do not add any commentary")
	})

	t.Run("件数が 0 以下ならデフォルト件数", func(t *testing.T) {
		got := BuildCopy(req, 0)
		assert.Contains(t, got, "Write 3 distinct ad captions")
	})

	t.Run("件数を指定できる", func(t *testing.T) {
		got := BuildCopy(req, 5)
		assert.Contains(t, got, "exactly 5 strings")
	})
}
