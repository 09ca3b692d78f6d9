package layers

import (
	"testing"
)

func TestCreateCenteredLayerWithContent(t *testing.T) {
	tests := []struct {
		name         string
		content      string
		screenWidth  int
		screenHeight int
	}{
		{"normal screen", "Test Content", 120, 40},
		{"small content on large screen", "X", 200, 100},
		{"content wider than screen", "This is a very long piece of content that will not fit", 20, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if layer := CreateCenteredLayer(tt.content, tt.screenWidth, tt.screenHeight); layer == nil {
				t.Fatal("CreateCenteredLayer should return a layer for non-empty content")
			}
		})
	}
}

func TestCreateCenteredLayerWithEmptyContent(t *testing.T) {
	if layer := CreateCenteredLayer("", 120, 40); layer != nil {
		t.Error("CreateCenteredLayer should return nil for empty content")
	}
}

func TestHelpWidth(t *testing.T) {
	tests := []struct {
		screen int
		want   int
	}{
		{200, HelpMaxWidth},
		{100, 50},
		{60, HelpMinWidth},
		{30, 30}, // never wider than the screen
	}
	for _, tt := range tests {
		if got := HelpWidth(tt.screen); got != tt.want {
			t.Errorf("HelpWidth(%d) = %d, want %d", tt.screen, got, tt.want)
		}
	}
}
