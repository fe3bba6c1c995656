package server

import (
	"bytes"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/rigterw/PCG/pkg/engine/errors"
	"github.com/rigterw/PCG/pkg/game/devtools"
	"github.com/rigterw/PCG/pkg/game/generator"
	"github.com/rigterw/PCG/pkg/game/level"
	"github.com/rigterw/PCG/pkg/game/seedcode"
	"github.com/rigterw/PCG/pkg/game/spawn"
)

// Response headers carrying the seed of the returned level
const (
	headerSeed     = "X-Level-Seed"
	headerSeedCode = "X-Level-Seed-Code"
)

// Output formats
const (
	FormatJSON     = "json"
	FormatTiled    = "tiled"
	FormatText     = "text"
	FormatManifest = "manifest"
)

var formats = []string{FormatJSON, FormatTiled, FormatText, FormatManifest}

// errorResponse is the body of every failed request
type errorResponse struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Meta    map[string]any `json:"meta,omitempty"`
}

func writeError(c *gin.Context, err error) {
	code := errors.GetCode(err)
	c.AbortWithStatusJSON(code.HTTPStatus(), errorResponse{
		Code:    code.String(),
		Message: errors.GetMessage(err),
		Meta:    errors.GetMeta(err),
	})
}

func (s *Server) getLevel(c *gin.Context) {
	cfg, err := s.configFromQuery(c)
	if err != nil {
		writeError(c, err)
		return
	}
	if code, ok := c.GetQuery("code"); ok {
		if cfg.Seed, err = seedcode.Decode(code); err != nil {
			writeError(c, err)
			return
		}
	}
	s.respond(c, cfg)
}

func (s *Server) getLevelByCode(c *gin.Context) {
	cfg, err := s.configFromQuery(c)
	if err != nil {
		writeError(c, err)
		return
	}
	if cfg.Seed, err = seedcode.Decode(c.Param("code")); err != nil {
		writeError(c, err)
		return
	}
	s.respond(c, cfg)
}

func (s *Server) generate(cfg generator.Config) (*level.Data, error) {
	if s.opts.Cache != nil {
		return s.opts.Cache.GetOrGenerate(cfg, s.opts.Generator)
	}
	return s.opts.Generator.Generate(cfg)
}

func (s *Server) respond(c *gin.Context, cfg generator.Config) {
	format := c.DefaultQuery("format", FormatJSON)
	vb := errors.NewValidationBuilder()
	errors.ValidateEnum("format", format, formats, vb)
	if err := vb.Build(); err != nil {
		writeError(c, err)
		return
	}

	data, err := s.generate(cfg)
	if err != nil {
		s.opts.Logger.WithError(err).WithField("config", cfg.Key()).Warn("level generation failed")
		writeError(c, err)
		return
	}

	c.Header(headerSeed, strconv.FormatInt(data.Seed(), 10))
	c.Header(headerSeedCode, seedcode.Encode(data.Seed()))

	switch format {
	case FormatTiled:
		c.JSON(http.StatusOK, data.ToTiled())
	case FormatText:
		var buf bytes.Buffer
		if err := devtools.DumpLevel(&buf, data); err != nil {
			writeError(c, err)
			return
		}
		c.Data(http.StatusOK, "text/plain; charset=utf-8", buf.Bytes())
	case FormatManifest:
		manifest, err := spawn.BuildManifest(data, s.opts.Palette)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, manifest)
	default:
		c.JSON(http.StatusOK, data)
	}
}

// configFromQuery overlays query parameters on the server defaults. Every
// malformed parameter is reported at once.
func (s *Server) configFromQuery(c *gin.Context) (generator.Config, error) {
	cfg := s.opts.Defaults
	vb := errors.NewValidationBuilder()

	ints := []struct {
		name string
		dst  *int
	}{
		{"width", &cfg.LevelSize.W},
		{"height", &cfg.LevelSize.H},
		{"min_room_w", &cfg.MinRoomSize.W},
		{"min_room_h", &cfg.MinRoomSize.H},
		{"max_room_w", &cfg.MaxRoomSize.W},
		{"max_room_h", &cfg.MaxRoomSize.H},
		{"keys", &cfg.Objects.Keys},
		{"weapons", &cfg.Objects.Weapons},
		{"enemies", &cfg.Objects.Enemies},
	}
	for _, q := range ints {
		raw, ok := c.GetQuery(q.name)
		if !ok {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			vb.Fieldf(q.name, "must be an integer, got %q", raw)
			continue
		}
		*q.dst = n
	}

	if raw, ok := c.GetQuery("seed"); ok {
		seed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			vb.Fieldf("seed", "must be an integer, got %q", raw)
		} else {
			cfg.Seed = seed
		}
	}
	if raw, ok := c.GetQuery("markers"); ok {
		markers, err := strconv.ParseBool(raw)
		if err != nil {
			vb.Fieldf("markers", "must be a boolean, got %q", raw)
		} else {
			cfg.Objects.Markers = markers
		}
	}

	if err := vb.Build(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
