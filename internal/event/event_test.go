package event

import "testing"

func TestDispatcherOrderAndUnsubscribe(t *testing.T) {
	d := NewDispatcher()
	var got []string

	first := ListenerFunc(func(e Event) { got = append(got, "first:"+string(e.Type)) })
	second := &countingListener{}
	d.Subscribe(first, WaveStart, WaveClear)
	d.Subscribe(second, WaveStart)

	d.DispatchAll([]Event{{Type: WaveStart}, {Type: WaveClear}, {Type: Victory}})
	if len(got) != 2 || got[0] != "first:wave_start" || got[1] != "first:wave_clear" {
		t.Fatalf("first listener saw %v", got)
	}
	if second.n != 1 {
		t.Fatalf("second listener saw %d events, want 1", second.n)
	}

	d.Unsubscribe(WaveStart, second)
	d.Dispatch(Event{Type: WaveStart})
	if second.n != 1 {
		t.Fatal("unsubscribed listener still called")
	}
}

func TestRecorderDrain(t *testing.T) {
	var r Recorder
	r.Emit(WaveStart, WaveData{Wave: 1})
	r.Emit(BossSpawn, nil)
	if r.Len() != 2 {
		t.Fatalf("len = %d", r.Len())
	}
	events := r.Drain()
	if events[0].Data.(WaveData).Wave != 1 || events[1].Type != BossSpawn {
		t.Fatalf("unexpected events %+v", events)
	}
	if r.Len() != 0 || r.Drain() != nil {
		t.Fatal("recorder not empty after drain")
	}
}

type countingListener struct{ n int }

func (c *countingListener) OnEvent(Event) { c.n++ }
