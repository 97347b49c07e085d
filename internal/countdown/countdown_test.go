package countdown

import "testing"

func TestZeroValueIsOff(t *testing.T) {
	var tm Timer
	if tm.Active() {
		t.Error("zero timer should not be active")
	}
	for i := 0; i < 5; i++ {
		if tm.Tick() {
			t.Fatal("off timer must never expire")
		}
	}
}

func TestArmTickExpireOnce(t *testing.T) {
	var tm Timer
	tm.Arm(3)

	if !tm.Active() {
		t.Fatal("armed timer should be active")
	}

	// Three decrement ticks, then the expiry tick.
	for i := 0; i < 3; i++ {
		if tm.Tick() {
			t.Fatalf("tick %d: expired early", i)
		}
	}
	if !tm.Tick() {
		t.Fatal("expected expiry on fourth tick")
	}

	// Expiry reported exactly once.
	if tm.Tick() {
		t.Error("timer expired twice")
	}
	if tm.Active() {
		t.Error("expired timer should be off")
	}
}

func TestRearmRestartsPeriod(t *testing.T) {
	var tm Timer
	tm.Arm(2)
	tm.Tick()
	tm.Arm(2) // refresh before expiry

	ticks := 0
	for !tm.Tick() {
		ticks++
		if ticks > 10 {
			t.Fatal("timer never expired")
		}
	}
	if ticks != 2 {
		t.Errorf("expected 2 decrement ticks after re-arm, got %d", ticks)
	}
}

func TestDisarmSuppressesExpiry(t *testing.T) {
	var tm Timer
	tm.Arm(1)
	tm.Disarm()
	for i := 0; i < 3; i++ {
		if tm.Tick() {
			t.Fatal("disarmed timer expired")
		}
	}
}

func TestExhausted(t *testing.T) {
	var tm Timer
	if !tm.Exhausted() {
		t.Error("off timer should be exhausted")
	}

	tm.Arm(2)
	if tm.Exhausted() {
		t.Error("freshly armed timer should not be exhausted")
	}

	tm.Tick()
	tm.Tick()
	if !tm.Exhausted() {
		t.Error("timer at zero should be exhausted")
	}
}

func TestArmNonPositive(t *testing.T) {
	var tm Timer
	tm.Arm(0)
	if !tm.Tick() {
		t.Error("Arm(0) should expire on the next tick")
	}

	tm.Arm(-5)
	if !tm.Tick() {
		t.Error("negative count should behave like zero")
	}
}
