// Package assets loads the four sprite images the window host draws.
package assets

import (
	"embed"
	"fmt"
	"image"
	_ "image/png" // Register PNG format
	"io/fs"
	"os"
	"path"
)

//go:embed images/*.png
var projectAssets embed.FS

// Files names the image file for each sprite, relative to the asset root.
type Files struct {
	Ball       string
	Background string
	PawLeft    string
	PawRight   string
}

// DefaultFiles are the names of the embedded images.
var DefaultFiles = Files{
	Ball:       "ball.png",
	Background: "background.png",
	PawLeft:    "paw_left.png",
	PawRight:   "paw_right.png",
}

// Set holds the decoded sprite images.
type Set struct {
	Ball       image.Image
	Background image.Image
	PawLeft    image.Image
	PawRight   image.Image
}

// Embedded returns the images compiled into the binary.
func Embedded() fs.FS {
	sub, err := fs.Sub(projectAssets, "images")
	if err != nil {
		panic(err) // the embed pattern guarantees the directory
	}
	return sub
}

// Load decodes every image named in files from dir, or from the embedded
// images when dir is empty. Any missing or undecodable image is an error.
func Load(dir string, files Files) (*Set, error) {
	root := Embedded()
	if dir != "" {
		root = os.DirFS(dir)
	}
	return LoadFS(root, files)
}

// LoadFS decodes the images from root.
func LoadFS(root fs.FS, files Files) (*Set, error) {
	var set Set
	targets := []struct {
		name string
		dst  *image.Image
	}{
		{files.Ball, &set.Ball},
		{files.Background, &set.Background},
		{files.PawLeft, &set.PawLeft},
		{files.PawRight, &set.PawRight},
	}

	for _, t := range targets {
		img, err := loadImage(root, t.name)
		if err != nil {
			return nil, err
		}
		*t.dst = img
	}
	return &set, nil
}

func loadImage(root fs.FS, name string) (image.Image, error) {
	f, err := root.Open(path.Clean(name))
	if err != nil {
		return nil, fmt.Errorf("failed to read image '%s': %w", name, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image '%s': %w", name, err)
	}
	return img, nil
}
