package assets

// Atlas assigns every distinct image a dense index in first-seen order.
// The host packs the images into one texture in the same order.
type Atlas struct {
	index  map[string]int
	images []string
}

func NewAtlas() *Atlas {
	return &Atlas{index: make(map[string]int)}
}

// Add returns the index of image, assigning the next free one if it is new.
func (a *Atlas) Add(image string) int {
	if i, ok := a.index[image]; ok {
		return i
	}
	i := len(a.images)
	a.index[image] = i
	a.images = append(a.images, image)
	return i
}

func (a *Atlas) Index(image string) (int, bool) {
	i, ok := a.index[image]
	return i, ok
}

// Images lists the images by index.
func (a *Atlas) Images() []string {
	return a.images
}

func (a *Atlas) Len() int {
	return len(a.images)
}
