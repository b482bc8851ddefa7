package tson

// This file contains the recursive productions: object, list and optional.

// parseObject recognizes '{' ws (member (',' ws member)*)? ws '}' where a
// member is a string key, a ':' and a value. Keys must be unique; a trailing
// comma before '}' is a syntax error.
func (p *parser) parseObject() (Value, error) {
	if err := p.push(); err != nil {
		return nil, err
	}
	defer p.pop()

	p.scn.next() // consume '{'
	fields := map[string]Value{}

	p.scn.skipWhitespace()
	if p.scn.peek() == '}' {
		p.scn.next()
		return Object{fields: fields}, nil
	}

	for {
		p.scn.skipWhitespace()
		keyOffset := p.scn.offset()

		switch c := p.scn.peek(); {
		case c == eof:
			return nil, &UnexpectedEOFError{Offset: keyOffset}
		case c != '"':
			return nil, &UnexpectedRuneError{Rune: c, Offset: keyOffset}
		}

		key, err := p.parseStringText()
		if err != nil {
			return nil, err
		}

		p.scn.skipWhitespace()
		switch c := p.scn.peek(); {
		case c == eof:
			return nil, &UnexpectedEOFError{Offset: p.scn.offset()}
		case c != ':':
			return nil, &UnexpectedRuneError{Rune: c, Offset: p.scn.offset()}
		}
		p.scn.next()

		val, err := p.parseValue()
		if err != nil {
			return nil, err
		}

		if _, ok := fields[string(key)]; ok {
			return nil, &DuplicateKeyError{Key: string(key), Offset: keyOffset}
		}
		fields[string(key)] = val

		p.scn.skipWhitespace()
		switch c := p.scn.peek(); c {
		case ',':
			p.scn.next()
		case '}':
			p.scn.next()
			return Object{fields: fields}, nil
		case eof:
			return nil, &UnexpectedEOFError{Offset: p.scn.offset()}
		default:
			return nil, &UnexpectedRuneError{Rune: c, Offset: p.scn.offset()}
		}
	}
}

// parseList recognizes '[' ws (value (',' ws value)*)? ws ']'. A trailing
// comma before ']' is a syntax error.
func (p *parser) parseList() (Value, error) {
	if err := p.push(); err != nil {
		return nil, err
	}
	defer p.pop()

	p.scn.next() // consume '['
	var values []Value

	p.scn.skipWhitespace()
	if p.scn.peek() == ']' {
		p.scn.next()
		return List{values: values}, nil
	}

	for {
		v, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		values = append(values, v)

		p.scn.skipWhitespace()
		switch c := p.scn.peek(); c {
		case ',':
			p.scn.next()
		case ']':
			p.scn.next()
			return List{values: values}, nil
		case eof:
			return nil, &UnexpectedEOFError{Offset: p.scn.offset()}
		default:
			return nil, &UnexpectedRuneError{Rune: c, Offset: p.scn.offset()}
		}
	}
}

// parseOptional recognizes the literal None, or Some( ws value ws ). No
// whitespace is permitted between Some and its opening parenthesis.
func (p *parser) parseOptional() (Value, error) {
	offset := p.scn.offset()

	if p.scn.matchLiteral("None") {
		return Optional{}, nil
	}

	if !p.scn.matchLiteral("Some(") {
		return nil, &UnexpectedTokenError{Token: p.scn.word(), Offset: offset}
	}

	if err := p.push(); err != nil {
		return nil, err
	}
	defer p.pop()

	child, err := p.parseValue()
	if err != nil {
		return nil, err
	}

	p.scn.skipWhitespace()
	switch c := p.scn.peek(); {
	case c == eof:
		return nil, &UnexpectedEOFError{Offset: p.scn.offset()}
	case c != ')':
		return nil, &UnexpectedRuneError{Rune: c, Offset: p.scn.offset()}
	}
	p.scn.next()

	return Optional{child: child}, nil
}
