package sand

import (
	"strconv"

	"sandfall/internal/core"
)

// Parameters reports the world settings and live material tallies.
func (s *Simulation) Parameters() core.ParameterSnapshot {
	counts := s.Counts()
	tallies := make([]core.Parameter, 0, len(counts))
	for _, m := range Materials() {
		if m == Empty {
			continue
		}
		tallies = append(tallies, intParam("count_"+m.String(), m.String(), counts[m]))
	}

	groups := []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				intParam("w", "Width", s.cfg.Width),
				intParam("h", "Height", s.cfg.Height),
				int64Param("seed", "Seed", s.cfg.Seed),
				stringParam("scene", "Scene", s.cfg.Scene),
				uint64Param("frame", "Frame", s.frame),
				intParam("activity", "Moves/tick", s.Activity()),
			},
		},
		{
			Name:   "Materials",
			Params: tallies,
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}

func uint64Param(key, label string, value uint64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatUint(value, 10),
	}
}

func stringParam(key, label, value string) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeString,
		Value: value,
	}
}
