package scene

import "testing"

func TestNewCornellBox_BuildsWithoutError(t *testing.T) {
	s := NewCornellBox()
	if err := s.Build(); err != nil {
		t.Fatalf("unexpected error building cornell box: %v", err)
	}
	if len(s.Lights()) != 1 {
		t.Errorf("expected exactly 1 light (the ceiling quad), got %d", len(s.Lights()))
	}
}

func TestNewCornellBox_CameraMatchesReferenceFraming(t *testing.T) {
	s := NewCornellBox()
	if s.Camera.VFov != 40 {
		t.Errorf("expected vfov 40, got %f", s.Camera.VFov)
	}
	if s.Camera.ImageWidth != 600 {
		t.Errorf("expected image width 600, got %d", s.Camera.ImageWidth)
	}
}

func TestNewCornellBox_BoundingBoxCoversRoom(t *testing.T) {
	s := NewCornellBox()
	box := s.BoundingBox()
	if box.Max.X < 555 || box.Max.Y < 555 || box.Max.Z < 555 {
		t.Errorf("expected bbox to cover the 555-unit room, got %v", box)
	}
}
