package league

// fakeMailer records every send so tests can assert on recipient lists.
type fakeMailer struct {
	sends []fakeSend
	err   error
}

type fakeSend struct {
	recipients []string
	subject    string
	body       string
}

func (f *fakeMailer) SendPlainEmail(recipients []string, subject, body string) error {
	f.sends = append(f.sends, fakeSend{recipients: recipients, subject: subject, body: body})
	return f.err
}
