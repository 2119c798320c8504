package game

import (
	"strconv"

	"hypermaze/internal/core"
	"hypermaze/internal/logging"
	"hypermaze/internal/raycast"

	"go.uber.org/zap"
)

// Session ties a game to the renderer that draws it and exposes the live view
// settings to the HUD. Changing a setting rebuilds the renderer.
type Session struct {
	name     string
	game     *Game
	renderer *raycast.Renderer
	log      *zap.Logger
	version  uint64
}

// NewSession wraps g and r under a display name.
func NewSession(name string, g *Game, r *raycast.Renderer, log *zap.Logger) *Session {
	if log == nil {
		log = logging.Provide()
	}
	return &Session{name: name, game: g, renderer: r, log: log}
}

// Name is the scene name.
func (s *Session) Name() string { return s.name }

// Game returns the wrapped game.
func (s *Session) Game() *Game { return s.game }

// Renderer returns the current renderer.
func (s *Session) Renderer() *raycast.Renderer { return s.renderer }

// Version increases every time a setting changes.
func (s *Session) Version() uint64 { return s.version }

const (
	keyFocalLength  = "focal_length"
	keyScreenSize   = "relative_screen_size"
	keyIllumination = "illumination_radius"
	keyMinimumLight = "minimum_light"
	keyWallScale    = "wall_scale"
	keyStep         = "move_step"
	keyTurn         = "turn_step"
	keyWalls        = "walls"
	keyNearest      = "nearest"
)

var sessionControls = []core.ParameterControl{
	{Key: keyFocalLength, Label: "Focal length", Step: 0.05, Min: 0.2, Max: 3, HasMin: true, HasMax: true},
	{Key: keyScreenSize, Label: "Screen size", Step: 0.05, Min: 0.1, Max: 2, HasMin: true, HasMax: true},
	{Key: keyIllumination, Label: "Light radius", Step: 0.1, Min: 0.1, Max: 5, HasMin: true, HasMax: true},
	{Key: keyMinimumLight, Label: "Min light", Step: 0.05, Min: 0, Max: 1, HasMin: true, HasMax: true},
	{Key: keyWallScale, Label: "Wall scale", Step: 0.01, Min: 0.01, Max: 1, HasMin: true, HasMax: true},
	{Key: keyStep, Label: "Move step", Step: 0.005, Min: 0.005, Max: 0.1, HasMin: true, HasMax: true},
	{Key: keyTurn, Label: "Turn step", Step: 0.01, Min: 0.01, Max: 0.3, HasMin: true, HasMax: true},
}

// ParameterControls lists the HUD-adjustable settings.
func (s *Session) ParameterControls() []core.ParameterControl {
	return sessionControls
}

func formatFloat(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }

// Parameters snapshots the current settings and map statistics.
func (s *Session) Parameters() core.ParameterSnapshot {
	cfg := s.renderer.Config()
	view := core.ParameterGroup{Name: "View", Params: []core.Parameter{
		{Key: keyFocalLength, Label: "Focal length", Type: core.ParamTypeFloat, Value: formatFloat(cfg.FocalLength)},
		{Key: keyScreenSize, Label: "Screen size", Type: core.ParamTypeFloat, Value: formatFloat(cfg.RelativeScreenSize)},
		{Key: keyIllumination, Label: "Light radius", Type: core.ParamTypeFloat, Value: formatFloat(cfg.IlluminationRadius)},
		{Key: keyMinimumLight, Label: "Min light", Type: core.ParamTypeFloat, Value: formatFloat(cfg.MinimumLight)},
		{Key: keyWallScale, Label: "Wall scale", Type: core.ParamTypeFloat, Value: formatFloat(cfg.WallScale)},
	}}
	camera := core.ParameterGroup{Name: "Camera", Params: []core.Parameter{
		{Key: keyStep, Label: "Move step", Type: core.ParamTypeFloat, Value: formatFloat(s.game.Step)},
		{Key: keyTurn, Label: "Turn step", Type: core.ParamTypeFloat, Value: formatFloat(s.game.Turn)},
	}}
	mazeGroup := core.ParameterGroup{Name: "Maze", Params: []core.Parameter{
		{Key: keyWalls, Label: "Walls", Type: core.ParamTypeInt, Value: strconv.Itoa(s.game.Map.Len())},
	}}
	if w, ok := s.game.Map.Nearest(); ok {
		mazeGroup.Params = append(mazeGroup.Params, core.Parameter{
			Key: keyNearest, Label: "Nearest", Type: core.ParamTypeFloat,
			Value: strconv.FormatFloat(w.ClosestPointDistance(), 'f', 3, 64),
		})
	}
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{view, camera, mazeGroup}}
}

// SetFloatParameter updates one setting. Values that would make the view
// invalid are refused and the current renderer is kept.
func (s *Session) SetFloatParameter(key string, value float64) bool {
	switch key {
	case keyStep:
		s.game.Step = value
		s.version++
		return true
	case keyTurn:
		s.game.Turn = value
		s.version++
		return true
	}

	cfg := s.renderer.Config()
	switch key {
	case keyFocalLength:
		cfg.FocalLength = value
	case keyScreenSize:
		cfg.RelativeScreenSize = value
	case keyIllumination:
		cfg.IlluminationRadius = value
	case keyMinimumLight:
		cfg.MinimumLight = value
	case keyWallScale:
		cfg.WallScale = value
	default:
		return false
	}
	r, err := raycast.New(cfg)
	if err != nil {
		s.log.Debug("view setting refused", zap.String("key", key), zap.Float64("value", value), zap.Error(err))
		return false
	}
	s.renderer = r
	s.version++
	return true
}
