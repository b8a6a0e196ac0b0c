// Package minimessage turns markup such as
//
//	<green>Green and <b>bold</b> text</green>
//
// into a component tree. A Deserializer is configured once through a
// Builder and is safe for concurrent use: every call to Deserialize
// owns its tokenizer, tag stack and tree.
package minimessage
