package prediction

import "testing"

func TestEffectiveTopK(t *testing.T) {
	tests := []struct {
		name string
		topK *int
		want int
	}{
		{"nil defaults to 3", nil, 3},
		{"explicit zero", intPtr(0), 0},
		{"negative clamps to zero", intPtr(-5), 0},
		{"positive passes through", intPtr(7), 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := AnalyzeResumeRequest{TopK: tt.topK}
			if got := req.EffectiveTopK(); got != tt.want {
				t.Errorf("EffectiveTopK() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestEffectiveThreshold(t *testing.T) {
	req := AnalyzeResumeRequest{}
	if got := req.EffectiveThreshold(); got != DefaultThreshold {
		t.Errorf("EffectiveThreshold() = %v, want %v", got, DefaultThreshold)
	}

	v := 0.75
	req.Threshold = &v
	if got := req.EffectiveThreshold(); got != 0.75 {
		t.Errorf("EffectiveThreshold() = %v, want 0.75", got)
	}
}

func intPtr(v int) *int { return &v }
