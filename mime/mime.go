// Copyright (c) 2015 Mute Communications Ltd.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mime implements multipart MIME messages whose parts are encoded
// with the jlib transfer encodings: the message text as quoted-printable,
// attachments as base64.
package mime

import (
	"bytes"
	"fmt"
	"io"
	"io/ioutil"
	"mime"
	"mime/multipart"
	"net/mail"
	"net/textproto"
	"path/filepath"
	"strings"

	"github.com/jlib/jlib/encode"
	"github.com/jlib/jlib/encode/base64"
	"github.com/jlib/jlib/encode/qp"
	"github.com/jlib/jlib/log"
	"golang.org/x/text/encoding/htmlindex"
)

// Attachment is a file attachment. The Content-Type of the MIME
// attachment is determined as follows:
//
//   - if ContentType != "" ContentType is used
//   - if ContentType == "" the Content-Type is derived from Filename
//   - if no Content-Type could be derived "application/octet-stream" is used
type Attachment struct {
	Filename    string    // original filename of attachment
	Reader      io.Reader // the io.Reader to read the attachment from
	ContentType string    // e.g., "application/pdf"
	Inline      bool      // attachment should be displayed inline
}

// Header is the header used for message encodings.
type Header struct {
	From      string   // mandatory
	To        string   // mandatory
	Cc        []string // optional
	MessageID string   // mandatory
	InReplyTo string   // optional
}

// identity transfer encodings, the part content is used as is
var identityEncodings = []string{"", "7bit", "8bit", "binary"}

func mailHeader(
	w io.Writer,
	header Header,
	subject string,
	boundary string,
) error {
	fmt.Fprintf(w, "From: %s\r\n", header.From)
	fmt.Fprintf(w, "To: %s\r\n", header.To)
	if header.Cc != nil {
		fmt.Fprintf(w, "Cc: %s\r\n", strings.Join(header.Cc, ","))
	}
	if subject != "" {
		fmt.Fprintf(w, "Subject: %s\r\n", mime.QEncoding.Encode("utf-8", subject))
	}
	fmt.Fprintf(w, "Message-ID: %s\r\n", header.MessageID)
	if header.InReplyTo != "" {
		fmt.Fprintf(w, "In-Reply-To: %s\r\n", header.InReplyTo)
	}
	fmt.Fprintf(w, "MIME-Version: 1.0\r\n")
	fmt.Fprintf(w, "Content-Type: multipart/mixed; boundary=%s\r\n", boundary)
	fmt.Fprintf(w, "\r\n")
	return nil
}

// writePart copies r through the encoder of codec into a new part of
// writer with header mh.
func writePart(
	writer *multipart.Writer,
	mh textproto.MIMEHeader,
	codec encode.Codec,
	r io.Reader,
) error {
	mh.Add("Content-Transfer-Encoding", codec.Name())
	partWriter, err := writer.CreatePart(mh)
	if err != nil {
		return log.Error(err)
	}
	encoder := codec.NewEncoder(partWriter)
	if _, err := io.Copy(encoder, r); err != nil {
		encoder.Close()
		return log.Error(err)
	}
	if err := encoder.Close(); err != nil {
		return log.Error(err)
	}
	return nil
}

func contentType(attachment *Attachment) string {
	if attachment.ContentType != "" {
		return attachment.ContentType
	}
	if ct := mime.TypeByExtension(filepath.Ext(attachment.Filename)); ct != "" {
		return ct
	}
	return "application/octet-stream"
}

func multipartMIME(
	writer *multipart.Writer,
	msg string,
	attachments []*Attachment,
) error {
	textCodec, err := encode.Lookup(qp.Name)
	if err != nil {
		return log.Error(err)
	}
	attachmentCodec, err := encode.Lookup(base64.Name)
	if err != nil {
		return log.Error(err)
	}

	// write message
	mh := make(textproto.MIMEHeader)
	mh.Add("Content-Type", "text/plain; charset=utf-8")
	err = writePart(writer, mh, textCodec, strings.NewReader(msg))
	if err != nil {
		return err
	}

	// write attachments
	for _, attachment := range attachments {
		mh = make(textproto.MIMEHeader)
		mh.Add("Content-Type", contentType(attachment))
		mh.Add("Content-Disposition",
			"attachment; filename="+filepath.Base(attachment.Filename))
		if attachment.Inline {
			mh.Add("Content-Disposition", "inline")
		}
		err := writePart(writer, mh, attachmentCodec, attachment.Reader)
		if err != nil {
			return err
		}
	}
	return nil
}

func getSubject(msg string) string {
	parts := strings.SplitN(msg, "\n", 2)
	return strings.TrimRight(parts[0], "\r")
}

// New writes a MIME encoded message to w. The first line of msg is used as
// subject.
func New(
	w io.Writer,
	header Header,
	msg string,
	attachments []*Attachment,
) error {
	writer := multipart.NewWriter(w)
	err := mailHeader(w, header, getSubject(msg), writer.Boundary())
	if err != nil {
		return err
	}
	if err := multipartMIME(writer, msg, attachments); err != nil {
		return err
	}
	if err := writer.Close(); err != nil {
		return log.Error(err)
	}
	return nil
}

// decodePart returns a reader which decodes the part p according to its
// Content-Transfer-Encoding.
func decodePart(p *multipart.Part) (io.Reader, error) {
	cte := strings.ToLower(strings.TrimSpace(p.Header.Get("Content-Transfer-Encoding")))
	for _, identity := range identityEncodings {
		if cte == identity {
			return p, nil
		}
	}
	if cte == qp.Name {
		// message text uses LF line endings, independent of the platform
		return qp.NewDecoderSeparator(p, "\n"), nil
	}
	codec, err := encode.Lookup(cte)
	if err != nil {
		return nil, log.Errorf("mime: unsupported Content-Transfer-Encoding '%s'", cte)
	}
	return codec.NewDecoder(p), nil
}

// readText reads the text part p and converts it from its charset to UTF-8.
func readText(p *multipart.Part) (string, error) {
	mediaType, params, err := mime.ParseMediaType(p.Header.Get("Content-Type"))
	if err != nil {
		return "", log.Error(err)
	}
	if mediaType != "text/plain" {
		return "", log.Error("mime: expected 'text/plain' Content-Type")
	}
	r, err := decodePart(p)
	if err != nil {
		return "", err
	}
	if charset := params["charset"]; charset != "" && !strings.EqualFold(charset, "utf-8") {
		enc, err := htmlindex.Get(charset)
		if err != nil {
			return "", log.Errorf("mime: unknown charset '%s'", charset)
		}
		r = enc.NewDecoder().Reader(r)
	}
	content, err := ioutil.ReadAll(r)
	if err != nil {
		return "", log.Error(err)
	}
	return string(content), nil
}

// Parse parses a MIME encoded message.
func Parse(r io.Reader) (
	header *Header,
	subject string,
	message string,
	attachments []*Attachment,
	err error,
) {
	var h Header
	// read message
	msg, err := mail.ReadMessage(r)
	if err != nil {
		return nil, "", "", nil, log.Error(err)
	}
	// parse 'From'
	h.From = msg.Header.Get("From")
	if h.From == "" {
		return nil, "", "", nil, log.Error("mime: 'From' not defined")
	}
	// parse 'To'
	h.To = msg.Header.Get("To")
	if h.To == "" {
		return nil, "", "", nil, log.Error("mime: 'To' not defined")
	}
	// parse 'Cc'
	addressList, err := msg.Header.AddressList("Cc")
	if err != nil && err != mail.ErrHeaderNotPresent {
		return nil, "", "", nil, log.Error(err)
	}
	if err != mail.ErrHeaderNotPresent {
		for _, address := range addressList {
			h.Cc = append(h.Cc, address.Address)
		}
	}
	// parse subject
	subj := msg.Header.Get("Subject")
	if subj == "" {
		return nil, "", "", nil, log.Error("mime: 'Subject' not defined")
	}
	dec := new(mime.WordDecoder)
	subject, err = dec.DecodeHeader(subj)
	if err != nil {
		return nil, "", "", nil, log.Error(err)
	}
	// parse 'Message-ID'
	h.MessageID = msg.Header.Get("Message-ID")
	if h.MessageID == "" {
		return nil, "", "", nil, log.Error("mime: 'Message-ID' not defined")
	}
	// parse 'In-Reply-To'
	h.InReplyTo = msg.Header.Get("In-Reply-To")
	// parse 'MIME-Version'
	if msg.Header.Get("MIME-Version") != "1.0" {
		return nil, "", "", nil, log.Error("mime: wrong 'MIME-Version' header")
	}
	// parse 'Content-Type'
	mediaType, params, err := mime.ParseMediaType(msg.Header.Get("Content-Type"))
	if err != nil {
		return nil, "", "", nil, log.Error(err)
	} else if mediaType != "multipart/mixed" {
		return nil, "", "", nil, log.Error("mime: wrong 'Content-Type' header")
	}
	// read first MIME part (message), raw parts keep their
	// Content-Transfer-Encoding for decodePart
	mr := multipart.NewReader(msg.Body, params["boundary"])
	p, err := mr.NextRawPart()
	if err != nil {
		return nil, "", "", nil, log.Error(err)
	}
	message, err = readText(p)
	if err != nil {
		return nil, "", "", nil, err
	}
	// read optional additional MIME parts (attachments)
	for {
		p, err := mr.NextRawPart()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, "", "", nil, log.Error(err)
		}
		attachment, err := readAttachment(p)
		if err != nil {
			return nil, "", "", nil, err
		}
		attachments = append(attachments, attachment)
	}

	header = &h
	return
}

func readAttachment(p *multipart.Part) (*Attachment, error) {
	// parse header
	contentType := p.Header.Get("Content-Type")
	if contentType == "" {
		return nil, log.Error("mime: Content-Type undefined for attachment")
	}
	var filename string
	var inline bool
	for _, disposition := range p.Header["Content-Disposition"] {
		mediaType, params, err := mime.ParseMediaType(disposition)
		if err != nil {
			return nil, log.Error(err)
		}
		switch mediaType {
		case "attachment":
			filename = params["filename"]
		case "inline":
			inline = true
		default:
			return nil, log.Errorf("mime: unknown Content-Disposition in attachment: %s",
				mediaType)
		}
	}
	if filename == "" {
		log.Warn("mime: filename undefined for attachment")
	}
	// parse body
	r, err := decodePart(p)
	if err != nil {
		return nil, err
	}
	content, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, log.Error(err)
	}
	return &Attachment{
		Filename:    filename,
		Reader:      bytes.NewBuffer(content),
		ContentType: contentType,
		Inline:      inline,
	}, nil
}
