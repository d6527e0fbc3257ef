package domain

// Scene はプリセット背景のカテゴリです。画像データは持たず、名前だけがモデルに渡されます。
type Scene struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Channel は広告を出すソーシャルプラットフォームです。
type Channel struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	AspectRatio string `json:"aspect_ratio"` // 推奨フレーム
}

// Tone はコピー生成の文体指定です。
type Tone struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

var Scenes = []Scene{
	{ID: "lifestyle", Name: "Lifestyle"},
	{ID: "flatlay", Name: "Flat Lay"},
	{ID: "outdoor", Name: "Outdoor"},
	{ID: "seasonal", Name: "Seasonal"},
	{ID: "minimal", Name: "Minimal"},
	{ID: "studio", Name: "Studio Lit"},
}

var Channels = []Channel{
	{ID: "instagram", Name: "Instagram", AspectRatio: "1:1"},
	{ID: "tiktok", Name: "TikTok", AspectRatio: "9:16"},
	{ID: "linkedin", Name: "LinkedIn", AspectRatio: "4:3"},
	{ID: "facebook", Name: "Facebook", AspectRatio: "4:5"},
	{ID: "x", Name: "X", AspectRatio: "16:9"},
}

var Tones = []Tone{
	{ID: "playful", Name: "Playful"},
	{ID: "luxury", Name: "Luxury"},
	{ID: "urgent", Name: "Urgent"},
	{ID: "professional", Name: "Professional"},
	{ID: "witty", Name: "Witty"},
	{ID: "minimalist", Name: "Minimalist"},
}

// FindScene は ID に一致するシーンを返します。
func FindScene(id string) (Scene, bool) {
	for _, s := range Scenes {
		if s.ID == id {
			return s, true
		}
	}
	return Scene{}, false
}

// FindChannel は ID に一致するチャンネルを返します。
func FindChannel(id string) (Channel, bool) {
	for _, c := range Channels {
		if c.ID == id {
			return c, true
		}
	}
	return Channel{}, false
}

// FindTone は ID に一致するトーンを返します。
func FindTone(id string) (Tone, bool) {
	for _, t := range Tones {
		if t.ID == id {
			return t, true
		}
	}
	return Tone{}, false
}
