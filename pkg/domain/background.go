package domain

// BackgroundMode は背景指定のどちらの variant が有効かを示します。
type BackgroundMode string

const (
	BackgroundScene  BackgroundMode = "scene"
	BackgroundCustom BackgroundMode = "custom"
)

// BackgroundSpec はプリセットのシーン名か、カスタム背景画像のどちらかを指定します。
// 有効なのは Mode が示す一方のみですが、もう一方の値も保持されるため、
// モードを切り替えて戻しても入力済みのデータは失われません。
type BackgroundSpec struct {
	Mode   BackgroundMode
	Scene  string
	Custom *ImageAsset
}

// SceneBackground はプリセットシーンを使う BackgroundSpec を返します。
func SceneBackground(name string) BackgroundSpec {
	return BackgroundSpec{Mode: BackgroundScene, Scene: name}
}

// CustomBackground はカスタム背景画像を使う BackgroundSpec を返します。
func CustomBackground(img ImageAsset) BackgroundSpec {
	return BackgroundSpec{Mode: BackgroundCustom, Custom: &img}
}

// WithMode はモードだけを切り替えたコピーを返します。
func (b BackgroundSpec) WithMode(mode BackgroundMode) BackgroundSpec {
	b.Mode = mode
	return b
}

// IsCustom はカスタム背景が有効かどうかを返します。
func (b BackgroundSpec) IsCustom() bool {
	return b.Mode == BackgroundCustom
}
