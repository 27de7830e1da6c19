// Package email provides the optional notification subsystem of a bootkit
// service.
//
// Initialize picks a sender from Config: Postmark when both tokens are set,
// a DevSender writing each message as an .html file plus a .json metadata file
// when EMAIL_DEV_DIR is set, and nothing otherwise. Email is never required
// for startup: callers log an Initialize error and continue.
//
//	sender, enabled, err := email.Initialize(cfg)
//	if err != nil {
//		log.Warn("email disabled", logger.Error(err))
//	}
//	if enabled && err == nil {
//		_ = sender.SendEmail(ctx, email.SendEmailParams{
//			SendTo:   "ops@example.com",
//			Subject:  "Deployed",
//			BodyHTML: "<p>ok</p>",
//		})
//	}
//
// Every sender validates SendEmailParams before doing any work; invalid input
// matches ErrInvalidParams, delivery problems match ErrFailedToSendEmail.
package email
