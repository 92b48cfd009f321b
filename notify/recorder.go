package notify

// Message is a notification captured by Recorder.
type Message struct {
	Title string
	Body  string
}

// Recorder is a Notifier that keeps every notification in memory instead of
// displaying it.
type Recorder struct {
	RequestErr error
	Sent       []Message
	Requests   int
	Perm       Permission
	// Grant is the permission handed out on request
	Grant Permission
}

func (r *Recorder) Permission() Permission {
	return r.Perm
}

func (r *Recorder) RequestPermission() (Permission, error) {
	r.Requests++

	if r.RequestErr != nil {
		return r.Perm, r.RequestErr
	}

	r.Perm = r.Grant

	return r.Perm, nil
}

func (r *Recorder) Notify(title, body string) error {
	if r.Perm != PermissionGranted {
		return ErrPermission
	}

	r.Sent = append(r.Sent, Message{Title: title, Body: body})

	return nil
}
