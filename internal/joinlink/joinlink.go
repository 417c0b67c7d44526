// Package joinlink renders room-join links for out-of-band sharing: a URL
// carrying the room id, and the same URL as a scannable QR PNG. Both are pure
// functions of their inputs.
package joinlink

import (
	"encoding/base64"
	"net/url"

	qrcode "github.com/skip2/go-qrcode"
)

// URL builds the join link for a room, e.g. http://host:3000?room=ABC123.
func URL(base, roomID string) string {
	return base + "?room=" + url.QueryEscape(roomID)
}

// Image encodes the join URL as a 256px QR PNG wrapped in a data URL, ready
// to drop into an <img> tag.
func Image(joinURL string) (string, error) {
	png, err := qrcode.Encode(joinURL, qrcode.Medium, 256)
	if err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}
