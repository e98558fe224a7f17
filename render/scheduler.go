package render

import (
	"fmt"
	"image"
	"image/draw"
	"sync"

	mandel "github.com/marben/julia_explorer"
)

// frameScheduler hands out the tiles of one frame to renderers and
// assembles the finished tiles.
type frameScheduler struct {
	region mandel.Region
	mode   mandel.Mode
	pal    mandel.Palette
	img    *image.RGBA

	totalPixels    int
	finishedPixels int

	unstarted []image.Rectangle
	m         sync.Mutex
}

func newFrameScheduler(w, h, tileSize int, region mandel.Region, mode mandel.Mode, pal mandel.Palette) *frameScheduler {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	return &frameScheduler{
		region:      region,
		mode:        mode,
		pal:         pal,
		img:         img,
		totalPixels: w * h,
		unstarted:   mandel.SplitRect(img.Bounds(), tileSize, tileSize),
	}
}

func (fs *frameScheduler) popTile() (tile image.Rectangle, found bool) {
	fs.m.Lock()
	defer fs.m.Unlock()

	n := len(fs.unstarted)
	if n == 0 {
		return image.Rectangle{}, false
	}
	tile = fs.unstarted[n-1]
	fs.unstarted = fs.unstarted[:n-1]
	return tile, true
}

func (fs *frameScheduler) tileFinished(tileImg image.RGBA) {
	fs.m.Lock()
	defer fs.m.Unlock()

	draw.Draw(
		fs.img,
		tileImg.Bounds(),     // destination rectangle (global coords)
		&tileImg,             // source image
		tileImg.Bounds().Min, // source start
		draw.Src,
	)
	fs.finishedPixels += tileImg.Rect.Dx() * tileImg.Rect.Dy()
}

func (fs *frameScheduler) finished() float32 {
	fs.m.Lock()
	defer fs.m.Unlock()
	return float32(fs.finishedPixels) / float32(fs.totalPixels)
}

// render renders tiles on renderer until none are left.
// Can be called from multiple goroutines in parallel.
func (fs *frameScheduler) render(renderer mandel.Renderer) error {
	w, h := fs.img.Rect.Dx(), fs.img.Rect.Dy()
	for {
		tile, found := fs.popTile()
		if !found {
			return nil
		}
		tileImg, err := renderer.RenderTile(fs.region, fs.mode, fs.pal, tile, w, h)
		if err != nil {
			return fmt.Errorf("render tile %s: %w", tile, err)
		}
		fs.tileFinished(tileImg)
	}
}

// run drives workers goroutines over the tile queue and returns the first error.
func (fs *frameScheduler) run(renderer mandel.Renderer, workers int) error {
	if workers <= 1 {
		return fs.render(renderer)
	}

	errs := make(chan error, workers)
	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := fs.render(renderer); err != nil {
				errs <- err
			}
		}()
	}
	wg.Wait()
	close(errs)

	return <-errs
}
