package render

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"math"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/fogleman/gg"
	log "github.com/sirupsen/logrus"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

const (
	cardWidth  = 1200
	cardHeight = 600

	cardTextX        = 80
	cardTitleY       = 120
	cardTitleMaxW    = 1040
	cardTitleMaxSize = 84
	cardTitleMinSize = 40
	cardArtistSize   = 40
	cardTimeSize     = 32

	cardBarHeight = 8
	cardKnobR     = 12
	cardCornerR   = 40
)

// Generator renders PNG images for Discord attachments
type Generator struct {
	httpClient *http.Client
}

// NewGenerator creates a generator with a default HTTP client
func NewGenerator() *Generator {
	return &Generator{
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// SpotifyCard describes a playing track to render
type SpotifyCard struct {
	Title    string
	Artists  []string
	CoverURL string
	Elapsed  time.Duration
	Duration time.Duration
}

// GenerateSpotifyCard renders a now-playing card: the album cover scaled to
// fill the frame, a horizontal darkening gradient, the track title and
// artists, and a progress bar with elapsed and total time.
func (g *Generator) GenerateSpotifyCard(ctx context.Context, card SpotifyCard) ([]byte, error) {
	start := time.Now()
	defer func() {
		log.WithField("duration_ms", time.Since(start).Milliseconds()).
			WithField("track", card.Title).
			Debug("Spotify card generation completed")
	}()

	cover, err := g.fetchImage(ctx, card.CoverURL)
	if err != nil {
		return nil, err
	}

	dc := gg.NewContext(cardWidth, cardHeight)
	dc.DrawImage(coverFit(cover, cardWidth, cardHeight), 0, 0)

	drawHorizontalGradient(dc, cardWidth, cardHeight)

	face, size, title, err := fitTitle(card.Title)
	if err != nil {
		return nil, fmt.Errorf("failed to load title font: %w", err)
	}
	dc.SetFontFace(face)
	dc.SetRGBA255(255, 255, 255, 255)
	dc.DrawStringAnchored(title, cardTextX, cardTitleY, 0, 1)

	artistFace, err := loadFont(goregular.TTF, cardArtistSize)
	if err != nil {
		return nil, fmt.Errorf("failed to load artist font: %w", err)
	}
	dc.SetFontFace(artistFace)
	dc.SetRGBA255(220, 220, 220, 255)
	dc.DrawStringAnchored(strings.Join(card.Artists, ", "), cardTextX, cardTitleY+float64(size)+20, 0, 1)

	drawProgressBar(dc, card.Elapsed, card.Duration)

	rounded := roundCorners(dc.Image(), cardCornerR)

	var buf bytes.Buffer
	if err := gg.NewContextForImage(rounded).EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("failed to encode PNG: %w", err)
	}
	return buf.Bytes(), nil
}

// coverFit scales an image to cover the target box, cropping the overflow
// around the center.
func coverFit(img image.Image, width, height int) image.Image {
	srcW := img.Bounds().Dx()
	srcH := img.Bounds().Dy()
	if srcW == 0 || srcH == 0 {
		return image.NewRGBA(image.Rect(0, 0, width, height))
	}

	scale := math.Max(float64(width)/float64(srcW), float64(height)/float64(srcH))
	scaledW := int(math.Ceil(float64(srcW) * scale))
	scaledH := int(math.Ceil(float64(srcH) * scale))

	scaled := image.NewRGBA(image.Rect(0, 0, scaledW, scaledH))
	xdraw.CatmullRom.Scale(scaled, scaled.Bounds(), img, img.Bounds(), xdraw.Over, nil)

	offsetX := (scaledW - width) / 2
	offsetY := (scaledH - height) / 2
	out := image.NewRGBA(image.Rect(0, 0, width, height))
	xdraw.Copy(out, image.Point{}, scaled, image.Rect(offsetX, offsetY, offsetX+width, offsetY+height), xdraw.Over, nil)
	return out
}

// drawHorizontalGradient darkens the frame from left to right so the text
// stays readable over any cover art.
func drawHorizontalGradient(dc *gg.Context, width, height int) {
	for x := 0; x < width; x++ {
		alpha := math.Pow(1-float64(x)/float64(width), 3.5)
		dc.SetRGBA(0, 0, 0, alpha)
		dc.DrawLine(float64(x), 0, float64(x), float64(height))
		dc.Stroke()
	}
}

// fitTitle shrinks the title font until the text fits the card, then
// truncates with an ellipsis at the minimum size.
func fitTitle(title string) (face font.Face, size int, text string, err error) {
	measure := gg.NewContext(1, 1)

	for size = cardTitleMaxSize; size >= cardTitleMinSize; size -= 2 {
		face, err = loadFont(gobold.TTF, float64(size))
		if err != nil {
			return nil, 0, "", err
		}
		measure.SetFontFace(face)
		if w, _ := measure.MeasureString(title); w <= cardTitleMaxW {
			return face, size, title, nil
		}
	}

	size = cardTitleMinSize
	face, err = loadFont(gobold.TTF, float64(size))
	if err != nil {
		return nil, 0, "", err
	}
	measure.SetFontFace(face)

	text = title
	for len(text) > 0 {
		if w, _ := measure.MeasureString(text + "..."); w <= cardTitleMaxW {
			break
		}
		_, n := utf8.DecodeLastRuneInString(text)
		text = text[:len(text)-n]
	}
	return face, size, text + "...", nil
}

func drawProgressBar(dc *gg.Context, elapsed, duration time.Duration) {
	barY := float64(cardHeight - 80)
	barX := float64(cardTextX)
	barW := float64(cardWidth - 2*cardTextX)

	progress := clampProgress(elapsed, duration)
	knobX := barX + barW*progress

	// Played portion
	dc.SetRGBA255(255, 255, 255, 180)
	dc.DrawRectangle(barX, barY, knobX-barX, cardBarHeight)
	dc.Fill()

	// Remaining portion
	dc.SetRGBA255(255, 255, 255, 100)
	dc.SetLineWidth(2)
	dc.DrawLine(knobX, barY+cardBarHeight/2, barX+barW, barY+cardBarHeight/2)
	dc.Stroke()

	// Knob
	dc.SetRGBA255(255, 255, 255, 230)
	dc.DrawCircle(knobX, barY+4, cardKnobR)
	dc.Fill()

	timeFace, err := loadFont(goregular.TTF, cardTimeSize)
	if err != nil {
		return
	}
	dc.SetFontFace(timeFace)
	dc.SetRGBA255(255, 255, 255, 180)
	dc.DrawStringAnchored(FormatTrackTime(elapsed), barX, barY+20, 0, 1)
	dc.DrawStringAnchored(FormatTrackTime(duration), barX+barW, barY+20, 1, 1)
}

// clampProgress returns the played fraction of a track in [0, 1]
func clampProgress(elapsed, duration time.Duration) float64 {
	if duration <= 0 {
		return 0
	}
	progress := float64(elapsed) / float64(duration)
	if progress < 0 {
		return 0
	}
	if progress > 1 {
		return 1
	}
	return progress
}

// FormatTrackTime formats a track position as mm:ss
func FormatTrackTime(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d.Seconds())
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}

// roundCorners clips an image to a rounded rectangle
func roundCorners(img image.Image, radius float64) image.Image {
	w := img.Bounds().Dx()
	h := img.Bounds().Dy()

	dc := gg.NewContext(w, h)
	dc.DrawRoundedRectangle(0, 0, float64(w), float64(h), radius)
	dc.Clip()
	dc.DrawImage(img, 0, 0)
	return dc.Image()
}
