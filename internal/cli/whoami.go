package cli

import "fmt"

type WhoamiCmd struct{}

func (c *WhoamiCmd) Run(ctx *Context) error {
	sess, err := ctx.requireSession()
	if err != nil {
		return err
	}

	fmt.Printf("Username:  %s\n", sess.Username)
	fmt.Printf("Email:     %s\n", sess.Email)
	if sess.FullName != "" {
		fmt.Printf("Full name: %s\n", sess.FullName)
	}
	fmt.Printf("Logged in: %s\n", sess.LoggedInAt.Format("2006-01-02 15:04"))
	return nil
}
