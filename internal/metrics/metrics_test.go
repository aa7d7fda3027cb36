// Verdant - Garden Plant Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/verdant

package metrics

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecordRecommendation(t *testing.T) {
	tests := []struct {
		name    string
		outcome string
	}{
		{"satisfied run", "satisfied"},
		{"relaxed run", "relaxed"},
		{"exhausted run", "exhausted"},
		{"empty run", "empty"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := testutil.ToFloat64(RecommendRequests.WithLabelValues(tt.outcome))
			RecordRecommendation(tt.outcome, 3, 8, 5, 2*time.Millisecond)
			after := testutil.ToFloat64(RecommendRequests.WithLabelValues(tt.outcome))

			if after != before+1 {
				t.Errorf("requests{%s} = %v, want %v", tt.outcome, after, before+1)
			}
		})
	}
}

func TestRecordRelaxationStep(t *testing.T) {
	before := testutil.ToFloat64(RelaxationSteps.WithLabelValues("widen_sun_tolerance"))
	RecordRelaxationStep("widen_sun_tolerance")
	RecordRelaxationStep("widen_sun_tolerance")
	after := testutil.ToFloat64(RelaxationSteps.WithLabelValues("widen_sun_tolerance"))

	if after != before+2 {
		t.Errorf("relaxation steps = %v, want %v", after, before+2)
	}
}

func TestRecordPreferenceDefault(t *testing.T) {
	before := testutil.ToFloat64(PreferenceDefaults.WithLabelValues("goal"))
	RecordPreferenceDefault("goal")
	after := testutil.ToFloat64(PreferenceDefaults.WithLabelValues("goal"))

	if after != before+1 {
		t.Errorf("preference defaults = %v, want %v", after, before+1)
	}
}

func TestRecordCatalogLoad(t *testing.T) {
	t.Run("success sets gauge", func(t *testing.T) {
		RecordCatalogLoad(42, nil)
		if got := testutil.ToFloat64(CatalogRecords); got != 42 {
			t.Errorf("catalog records = %v, want 42", got)
		}
	})

	t.Run("failure increments errors and keeps gauge", func(t *testing.T) {
		RecordCatalogLoad(7, nil)
		before := testutil.ToFloat64(CatalogLoadErrors)
		RecordCatalogLoad(99, errors.New("bad header"))

		if got := testutil.ToFloat64(CatalogLoadErrors); got != before+1 {
			t.Errorf("load errors = %v, want %v", got, before+1)
		}
		if got := testutil.ToFloat64(CatalogRecords); got != 7 {
			t.Errorf("catalog records = %v, want 7", got)
		}
	})
}

func TestWriteTextfile(t *testing.T) {
	RecordRecommendation("satisfied", 1, 1, 1, time.Millisecond)

	path := filepath.Join(t.TempDir(), "verdant.prom")
	if err := WriteTextfile(path); err != nil {
		t.Fatalf("WriteTextfile() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read textfile: %v", err)
	}
	if !strings.Contains(string(data), "verdant_recommend_requests_total") {
		t.Error("textfile should contain verdant_recommend_requests_total")
	}
}
