package layout

// Zone is a tile's visibility classification for one pass. Zones are
// recomputed from scratch every pass and never stored on items.
type Zone int

const (
	// ZoneLive tiles intersect the viewport and render at full rate.
	ZoneLive Zone = iota
	// ZoneWarm tiles sit just outside the live span and stay
	// materialized at a throttled rate.
	ZoneWarm
	// ZoneCold tiles are far offscreen; their views are suspended and
	// pooled unless the item keeps them alive.
	ZoneCold
)

func (z Zone) String() string {
	switch z {
	case ZoneLive:
		return "live"
	case ZoneWarm:
		return "warm"
	default:
		return "cold"
	}
}

// WarmSpan is how many index positions beyond the live span stay warm on
// each side.
const WarmSpan = 2

// ClassifyZones labels each frame Live, Warm, or Cold. A tile is Live
// when its horizontal band intersects the viewport band [0,
// viewportWidth). Warm tiles lie within WarmSpan index positions of the
// minimum or maximum live index. When nothing is live, everything is
// Cold.
func ClassifyZones(frames []TileFrame, viewportWidth float64) []Zone {
	zones := make([]Zone, len(frames))

	minLive, maxLive := -1, -1
	for i, f := range frames {
		if f.Rect.IntersectsX(0, viewportWidth) {
			zones[i] = ZoneLive
			if minLive < 0 {
				minLive = f.Index
			}
			maxLive = f.Index
		} else {
			zones[i] = ZoneCold
		}
	}

	if minLive < 0 {
		return zones
	}

	for i, f := range frames {
		if zones[i] == ZoneLive {
			continue
		}
		if f.Index >= minLive-WarmSpan && f.Index <= maxLive+WarmSpan {
			zones[i] = ZoneWarm
		}
	}

	return zones
}
