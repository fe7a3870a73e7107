package llm

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"maps"
	"strings"
	"time"
)

// NormalizeAndSanitizeJSON cleans a model response before validation:
//   - drops unknown keys (additionalProperties = false friendliness)
//   - drops keys whose value is null, empty, or not a string ("wrong type
//     means absent", never a whole-response failure)
//   - trims whitespace on kept values
//   - drops report_date when it does not parse as YYYY-MM-DD
//
// It returns the cleaned document plus the list of dropped keys.
func NormalizeAndSanitizeJSON(raw []byte, logger *slog.Logger) ([]byte, []string, error) {
	if logger == nil {
		logger = slog.Default()
	}

	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, nil, fmt.Errorf("sanitize: decode: %w", err)
	}

	dropped := make([]string, 0, 4)

	allowed := map[string]struct{}{
		"name": {}, "hospital_name": {}, "report_date": {}, "report_type": {}, "summary": {},
	}
	for k := range maps.Clone(m) {
		if _, ok := allowed[k]; !ok {
			delete(m, k)
			dropped = append(dropped, k+"(unknown)")
		}
	}

	for k, v := range maps.Clone(m) {
		s, ok := v.(string)
		if !ok {
			delete(m, k)
			if v == nil {
				dropped = append(dropped, k+"(null)")
			} else {
				dropped = append(dropped, k+"(type)")
			}
			continue
		}
		s = strings.TrimSpace(s)
		if s == "" || strings.EqualFold(s, "null") {
			delete(m, k)
			dropped = append(dropped, k+"(empty)")
			continue
		}
		m[k] = s
	}

	if v, ok := m["report_date"].(string); ok {
		if _, err := time.Parse("2006-01-02", v); err != nil {
			delete(m, "report_date")
			dropped = append(dropped, "report_date(format)")
		}
	}

	out, err := json.Marshal(m)
	if err != nil {
		return nil, dropped, fmt.Errorf("sanitize: encode: %w", err)
	}
	if len(dropped) > 0 {
		logger.Warn("llm.extract.sanitize", "dropped", dropped)
	}
	return out, dropped, nil
}
