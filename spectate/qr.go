package spectate

import (
	"fmt"

	qrcode "github.com/skip2/go-qrcode"
)

// QRBitmap encodes url as a QR matrix without its quiet zone, true for dark modules
func QRBitmap(url string) ([][]bool, error) {
	qr, err := qrcode.New(url, qrcode.Medium)
	if err != nil {
		return nil, fmt.Errorf("qr encode %q: %w", url, err)
	}
	return trimQuietZone(qr.Bitmap()), nil
}

// trimQuietZone crops the light margin around the symbol
func trimQuietZone(bm [][]bool) [][]bool {
	top, left := len(bm), len(bm)
	bottom, right := -1, -1
	for y, row := range bm {
		for x, dark := range row {
			if !dark {
				continue
			}
			top = min(top, y)
			bottom = max(bottom, y)
			left = min(left, x)
			right = max(right, x)
		}
	}
	if bottom < 0 {
		return nil
	}

	out := make([][]bool, 0, bottom-top+1)
	for y := top; y <= bottom; y++ {
		out = append(out, bm[y][left:right+1])
	}
	return out
}
