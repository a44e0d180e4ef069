// Package editor implements the interactive, field-by-field record editor.
//
// An editing session pairs three parts:
//
//   - a Sequence, which knows which field is being asked and moves forward,
//     backward, to Interrupted or to Finished;
//   - an OutputBuilder, which parses raw answers into a partial record and
//     assembles the finished, fully typed record;
//   - a LineReader, which reads one line with an editable pre-filled default.
//
// The Session drives them until the user completes every field or aborts:
//
//	builder := editor.NewBuilder(schema, seed, assemble)
//	session := editor.NewSession(schema.Keys(), builder, reader)
//	out, err := session.Run(ctx)
//	if err != nil {
//	    return err
//	}
//	if out.Interrupted() {
//	    return nil // user typed :q or pressed ctrl-c
//	}
//	use(out.Record)
//
// # Commands
//
// Two literal commands are recognised on any prompt, compared after trimming
// whitespace:
//
//	:b  go back to the previous field
//	:q  abort the session
//
// # Errors
//
// A *ParseError is recovered inside the session: it is reported and the same
// field is asked again. A *MissingError can only surface from Build and is
// returned wrapped in ErrIncomplete, since the Sequence visits every field
// before reaching Finished.
package editor
