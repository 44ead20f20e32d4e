package utils

import (
	"bytes"
	"image"
	"image/jpeg"
	"testing"
)

func TestSha512String(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "empty",
			in:   "",
			want: "cf83e1357eefb8bdf1542850d66d8007d620e4050b5715dc83f4a921d36ce9ce47d0d13c5d85f2b0ff8318d2877eec2f63b931bd47417a81a538327af927da3e",
		},
		{
			name: "abc",
			in:   "abc",
			want: "ddaf35a193617abacc417349ae20413112e6fa4e89a97ea20a9eeee64b55d39a2192992a274fc1a836ba3c23a3feebbd454d4423643ce80e2a9ac94fa54ca49f",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sha512String(tt.in); got != tt.want {
				t.Errorf("Sha512String() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRandSalt(t *testing.T) {
	a := RandSalt(60)
	b := RandSalt(60)
	if a == b {
		t.Error("two salts should not collide")
	}
	if len(a) == 0 {
		t.Error("salt should not be empty")
	}
}

func TestGetDatesString(t *testing.T) {
	if got := GetDatesString(0, 100); got != "" {
		t.Errorf("expected empty string for zero date, got %q", got)
	}
	if got := GetDatesString(1696258800, 1696258800); got == "" {
		t.Error("expected a single date")
	}
	oneWeek := int64(7 * 86400)
	if got := GetDatesString(1696258800, 1696258800+oneWeek); got == "" ||
		len(got) <= len(GetDatesString(1696258800, 1696258800)) {
		t.Errorf("expected a date range, got %q", got)
	}
}

func TestCreateThumb(t *testing.T) {
	// 100x50 source, thumbnail bounded to 10x10
	src := image.NewRGBA(image.Rect(0, 0, 100, 50))
	var srcBuf bytes.Buffer
	if err := jpeg.Encode(&srcBuf, src, nil); err != nil {
		t.Fatal(err)
	}
	var out bytes.Buffer
	result, err := CreateThumb(10, &srcBuf, &out)
	if err != nil {
		t.Fatal(err)
	}
	if result.OldX != 100 || result.OldY != 50 {
		t.Errorf("original size = %dx%d, want 100x50", result.OldX, result.OldY)
	}
	if result.NewX > 10 || result.NewY > 10 {
		t.Errorf("thumb size = %dx%d, want bounded by 10x10", result.NewX, result.NewY)
	}
	if int64(out.Len()) != result.ThumbSize || result.ThumbSize == 0 {
		t.Errorf("thumb size mismatch: wrote %d, reported %d", out.Len(), result.ThumbSize)
	}

	if _, err := CreateThumb(10, bytes.NewReader([]byte("not an image")), &out); err == nil {
		t.Error("expected decode error for junk input")
	}
}
