package render

import (
	"bytes"
	"context"
	"fmt"
	"image"

	"github.com/fogleman/gg"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

const (
	bannerWidth  = 512
	bannerHeight = 200

	bannerAvatarSize = 100
	bannerAvatarX    = 30
	bannerAvatarY    = 50
	bannerTextX      = 150
)

// WelcomeBanner describes a new member to render a greeting for
type WelcomeBanner struct {
	GuildName string
	Username  string
	UserID    int64
	AvatarURL string
}

// GenerateWelcomeBanner renders the greeting image posted when a member
// joins: a black banner with a circular avatar, the guild greeting, the
// username and the user ID.
func (g *Generator) GenerateWelcomeBanner(ctx context.Context, banner WelcomeBanner) ([]byte, error) {
	avatar, err := g.fetchImage(ctx, banner.AvatarURL)
	if err != nil {
		return nil, err
	}

	dc := gg.NewContext(bannerWidth, bannerHeight)
	dc.SetRGB(0, 0, 0)
	dc.Clear()

	drawCircularAvatar(dc, avatar)

	largeFace, err := loadFont(gobold.TTF, 28)
	if err != nil {
		return nil, fmt.Errorf("failed to load banner font: %w", err)
	}
	smallFace, err := loadFont(goregular.TTF, 18)
	if err != nil {
		return nil, fmt.Errorf("failed to load banner font: %w", err)
	}

	dc.SetRGB(1, 1, 1)
	dc.SetFontFace(largeFace)
	dc.DrawStringAnchored(fmt.Sprintf("Welcome to %s", banner.GuildName), bannerTextX, 40, 0, 1)

	dc.SetFontFace(smallFace)
	dc.DrawStringAnchored(banner.Username, bannerTextX, 80, 0, 1)
	dc.DrawStringAnchored(fmt.Sprintf("ID: %d", banner.UserID), bannerTextX, 110, 0, 1)

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("failed to encode PNG: %w", err)
	}
	return buf.Bytes(), nil
}

// drawCircularAvatar scales the avatar down and clips it to a circle
func drawCircularAvatar(dc *gg.Context, avatar image.Image) {
	scaled := image.NewRGBA(image.Rect(0, 0, bannerAvatarSize, bannerAvatarSize))
	xdraw.CatmullRom.Scale(scaled, scaled.Bounds(), avatar, avatar.Bounds(), xdraw.Over, nil)

	dc.Push()
	dc.DrawCircle(bannerAvatarX+bannerAvatarSize/2, bannerAvatarY+bannerAvatarSize/2, bannerAvatarSize/2)
	dc.Clip()
	dc.DrawImage(scaled, bannerAvatarX, bannerAvatarY)
	dc.Pop()
}
