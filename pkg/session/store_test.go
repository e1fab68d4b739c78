package session

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/msimtools/motorsport-session-manager-go/pkg/model"
)

func sampleSession(driver string, laps [model.LapsPerSession]float64) model.Session {
	return model.Session{
		Driver:   driver,
		Track:    "Silver Pines",
		Vehicle:  model.VehicleGT3,
		LapTimes: laps,
	}
}

func TestStoreEmpty(t *testing.T) {
	store := NewStore()
	if got := store.SessionCount(); got != 0 {
		t.Errorf("SessionCount() = %v, want 0", got)
	}
	if got := store.OverallAverage(); got != 0.0 {
		t.Errorf("OverallAverage() = %v, want 0.0", got)
	}
	if got := store.Sessions(); len(got) != 0 {
		t.Errorf("Sessions() = %v, want empty", got)
	}
}

func TestStoreCapacity(t *testing.T) {
	store := NewStore()
	for i := 0; i < MaxSessions; i++ {
		sess := sampleSession(fmt.Sprintf("driver-%d", i),
			[model.LapsPerSession]float64{100, 100, 100})
		if !store.AddSession(sess) {
			t.Fatalf("AddSession %d rejected, want accepted", i)
		}
		if got := store.SessionCount(); got != i+1 {
			t.Errorf("SessionCount() = %v, want %v", got, i+1)
		}
	}

	rejected := sampleSession("driver-overflow",
		[model.LapsPerSession]float64{1, 1, 1})
	if store.AddSession(rejected) {
		t.Error("AddSession on full store accepted, want rejected")
	}
	if got := store.SessionCount(); got != MaxSessions {
		t.Errorf("SessionCount() = %v, want %v", got, MaxSessions)
	}
	for _, sess := range store.Sessions() {
		if sess.Driver == rejected.Driver {
			t.Error("rejected session found in store")
		}
	}
}

func TestStoreKeepsInsertionOrder(t *testing.T) {
	store := NewStore()
	want := []model.Session{
		sampleSession("first", [model.LapsPerSession]float64{90, 91, 92}),
		sampleSession("second", [model.LapsPerSession]float64{70, 71, 72}),
		sampleSession("third", [model.LapsPerSession]float64{120, 121, 122}),
	}
	for _, sess := range want {
		store.AddSession(sess)
	}
	if diff := cmp.Diff(want, store.Sessions()); diff != "" {
		t.Errorf("Sessions() mismatch (-want +got):\n%s", diff)
	}
}

func TestStoreCopiesOnAdd(t *testing.T) {
	store := NewStore()
	sess := sampleSession("mutated later", [model.LapsPerSession]float64{100, 100, 100})
	store.AddSession(sess)

	sess.LapTimes[0] = 0.0
	sess.Driver = "changed"

	stored := store.Sessions()[0]
	if stored.Driver != "mutated later" || stored.LapTimes[0] != 100 {
		t.Errorf("stored session changed after AddSession: %+v", stored)
	}
}

func TestStoreSessionsReturnsCopy(t *testing.T) {
	store := NewStore()
	store.AddSession(sampleSession("original", [model.LapsPerSession]float64{100, 100, 100}))

	leaked := store.Sessions()
	leaked[0].Driver = "tampered"

	if got := store.Sessions()[0].Driver; got != "original" {
		t.Errorf("store changed through Sessions() result, driver = %v", got)
	}
}

func TestStoreOverallAverage(t *testing.T) {
	tests := []struct {
		name string
		laps [][model.LapsPerSession]float64
		want float64
	}{
		{
			name: "single session",
			laps: [][model.LapsPerSession]float64{{100, 100, 100}},
			want: 100.0,
		},
		{
			name: "single session uneven laps",
			laps: [][model.LapsPerSession]float64{{70, 71, 69}},
			want: 70.0,
		},
		{
			name: "two sessions weighted per lap",
			laps: [][model.LapsPerSession]float64{{90, 90, 90}, {110, 110, 110}},
			want: 100.0,
		},
		{
			name: "uneven laps",
			laps: [][model.LapsPerSession]float64{{100, 100, 100}, {50, 100, 150}},
			want: 100.0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := NewStore()
			for i, laps := range tt.laps {
				store.AddSession(sampleSession(fmt.Sprintf("driver-%d", i), laps))
			}
			if got := store.OverallAverage(); got != tt.want {
				t.Errorf("OverallAverage() = %v, want %v", got, tt.want)
			}
		})
	}
}
