package services

import (
	"testing"

	"github.com/AndrywBarrera/OperativePages/filesystem/models"
	"github.com/AndrywBarrera/OperativePages/utils/simerr"
)

func setupController(t *testing.T) *Controller {
	t.Helper()
	controller, err := NewController(nil)
	if err != nil {
		t.Fatalf("Expected no error creating controller, got %v", err)
	}
	return controller
}

func request(t *testing.T, controller *Controller, now int, pid uint, file string, mode models.Mode) models.Outcome {
	t.Helper()
	outcome, err := controller.RequestAccess(now, pid, file, mode)
	if err != nil {
		t.Fatalf("Expected no error requesting %s for PID %d, got %v", file, pid, err)
	}
	return outcome
}

func TestRequestAccess_SameTickConflict(t *testing.T) {
	controller := setupController(t)

	first := request(t, controller, 3, 0, "archivo1.txt", models.ModeWrite)
	second := request(t, controller, 3, 1, "archivo1.txt", models.ModeRead)

	if first != models.Granted || second != models.Conflict {
		t.Errorf("Expected GRANTED then CONFLICT, got %s then %s", first, second)
	}
	if controller.Granted() != 1 || controller.Conflicts() != 1 {
		t.Errorf("Expected 1 granted and 1 conflict, got %d and %d", controller.Granted(), controller.Conflicts())
	}

	log := controller.Recent(models.DefaultLogWindow)
	if len(log) != 2 {
		t.Fatalf("Expected 2 log entries, got %d", len(log))
	}
	if log[0].PID != 0 || log[0].Sequence != 1 || log[1].PID != 1 || log[1].Sequence != 2 {
		t.Errorf("Expected entries in request order, got %+v", log)
	}
	if log[1].Tick != 3 || log[1].Outcome != models.Conflict || log[1].Mode != models.ModeRead {
		t.Errorf("Expected conflict entry at tick 3 in READ mode, got %+v", log[1])
	}
}

func TestRequestAccess_ReentrantForHolder(t *testing.T) {
	controller := setupController(t)

	request(t, controller, 0, 2, "archivo2.txt", models.ModeRead)
	again := request(t, controller, 1, 2, "archivo2.txt", models.ModeWrite)

	if again != models.Granted {
		t.Errorf("Expected holder re-request to be GRANTED, got %s", again)
	}
	files := controller.Files()
	if !files[1].Locked || files[1].Holder != 2 || files[1].Mode != models.ModeRead {
		t.Errorf("Expected archivo2.txt held by PID 2 in READ mode, got %+v", files[1])
	}
}

func TestRequestAccess_InvalidRequests(t *testing.T) {
	controller := setupController(t)

	if _, err := controller.RequestAccess(0, 0, "otro.txt", models.ModeRead); !simerr.Is(err, simerr.InvalidRequest) {
		t.Errorf("Expected InvalidRequest for unknown file, got %v", err)
	}
	if _, err := controller.RequestAccess(0, 0, "archivo1.txt", "APPEND"); !simerr.Is(err, simerr.InvalidRequest) {
		t.Errorf("Expected InvalidRequest for unknown mode, got %v", err)
	}
	if len(controller.Recent(models.DefaultLogWindow)) != 0 {
		t.Errorf("Expected invalid requests not to be logged, got %v", controller.Recent(models.DefaultLogWindow))
	}
}

func TestRelease(t *testing.T) {
	controller := setupController(t)
	request(t, controller, 0, 0, "archivo1.txt", models.ModeWrite)

	if controller.Release(1, "archivo1.txt") {
		t.Errorf("Expected release by non holder to be a no-op")
	}
	if got := request(t, controller, 1, 1, "archivo1.txt", models.ModeRead); got != models.Conflict {
		t.Errorf("Expected file to remain locked, got %s", got)
	}

	if !controller.Release(0, "archivo1.txt") {
		t.Errorf("Expected holder to release the file")
	}
	if got := request(t, controller, 2, 1, "archivo1.txt", models.ModeRead); got != models.Granted {
		t.Errorf("Expected GRANTED after release, got %s", got)
	}
	if controller.Release(0, "desconocido.txt") {
		t.Errorf("Expected release of unknown file to be a no-op")
	}
}

func TestReleaseAll(t *testing.T) {
	controller := setupController(t)
	request(t, controller, 0, 4, "archivo3.txt", models.ModeRead)
	request(t, controller, 0, 4, "archivo1.txt", models.ModeWrite)
	request(t, controller, 0, 5, "archivo2.txt", models.ModeWrite)

	released := controller.ReleaseAll(4)

	if len(released) != 2 || released[0] != "archivo1.txt" || released[1] != "archivo3.txt" {
		t.Errorf("Expected [archivo1.txt archivo3.txt], got %v", released)
	}
	for _, file := range controller.Files() {
		if file.Locked && file.Holder == 4 {
			t.Errorf("Expected PID 4 to hold nothing, still holds %s", file.Name)
		}
	}
	if files := controller.Files(); !files[1].Locked {
		t.Errorf("Expected archivo2.txt to stay locked by PID 5")
	}
}

func TestRecent(t *testing.T) {
	controller := setupController(t)
	for i := 0; i < models.DefaultLogWindow+5; i++ {
		request(t, controller, i, uint(i), "archivo1.txt", models.ModeRead)
	}

	recent := controller.Recent(models.DefaultLogWindow)

	if len(recent) != models.DefaultLogWindow {
		t.Fatalf("Expected %d entries, got %d", models.DefaultLogWindow, len(recent))
	}
	if recent[0].Tick != 5 || recent[len(recent)-1].Tick != models.DefaultLogWindow+4 {
		t.Errorf("Expected ticks 5..%d, got %d..%d", models.DefaultLogWindow+4, recent[0].Tick, recent[len(recent)-1].Tick)
	}
}

func TestNewController_Errors(t *testing.T) {
	if _, err := NewController([]string{"a.txt", "a.txt"}); !simerr.Is(err, simerr.ConfigurationError) {
		t.Errorf("Expected ConfigurationError for duplicate file, got %v", err)
	}
	if _, err := NewController([]string{""}); !simerr.Is(err, simerr.ConfigurationError) {
		t.Errorf("Expected ConfigurationError for empty name, got %v", err)
	}
}

func TestRelease_CountsReentrantHolds(t *testing.T) {
	controller := setupController(t)
	request(t, controller, 0, 3, "archivo1.txt", models.ModeWrite)
	request(t, controller, 1, 3, "archivo1.txt", models.ModeWrite)

	if controller.Release(3, "archivo1.txt") {
		t.Errorf("Expected first release to keep the file locked")
	}
	if file := controller.Files()[0]; !file.Locked || file.Holds != 1 {
		t.Errorf("Expected archivo1.txt locked with 1 hold, got %+v", file)
	}
	if !controller.Release(3, "archivo1.txt") {
		t.Errorf("Expected second release to unlock the file")
	}
	if file := controller.Files()[0]; file.Locked || file.Holds != 0 {
		t.Errorf("Expected archivo1.txt free, got %+v", file)
	}
}
