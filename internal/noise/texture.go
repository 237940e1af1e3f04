package noise

import (
	"fmt"
	"strings"
)

// Texture is the user-facing label for an ambient sound. Textures map onto
// spectral categories; the mapping is not one-to-one. Rain and coffee-shop
// intentionally share the brown category - the audible output is identical
// and only the label differs.
type Texture string

const (
	TextureWhiteNoise Texture = "white-noise"
	TextureRain       Texture = "rain"
	TextureCoffeeShop Texture = "coffee-shop"
	TextureNature     Texture = "nature"
	TextureNone       Texture = "none"
)

// Textures lists every selectable texture in display order.
func Textures() []Texture {
	return []Texture{TextureWhiteNoise, TextureRain, TextureCoffeeShop, TextureNature, TextureNone}
}

// ParseTexture validates a texture label from configuration or the CLI.
func ParseTexture(s string) (Texture, error) {
	t := Texture(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Textures() {
		if t == known {
			return t, nil
		}
	}
	return TextureNone, fmt.Errorf("unknown sound %q (choose one of: %s)", s, textureList())
}

func textureList() string {
	names := make([]string, 0, len(Textures()))
	for _, t := range Textures() {
		names = append(names, string(t))
	}
	return strings.Join(names, ", ")
}

// Category returns the spectral category synthesised for this texture.
func (t Texture) Category() Category {
	switch t {
	case TextureWhiteNoise:
		return White
	case TextureRain, TextureCoffeeShop:
		return Brown
	case TextureNature:
		return Pink
	default:
		return Silent
	}
}

// DisplayName returns the human-readable texture name.
func (t Texture) DisplayName() string {
	switch t {
	case TextureWhiteNoise:
		return "White Noise"
	case TextureRain:
		return "Rain"
	case TextureCoffeeShop:
		return "Coffee Shop"
	case TextureNature:
		return "Nature"
	default:
		return "None"
	}
}

// Icon returns the emoji shown next to the texture in the countdown UI.
func (t Texture) Icon() string {
	switch t {
	case TextureWhiteNoise:
		return "🌫️"
	case TextureRain:
		return "🌧️"
	case TextureCoffeeShop:
		return "☕"
	case TextureNature:
		return "🌿"
	default:
		return "🔇"
	}
}
